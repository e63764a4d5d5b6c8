package configure

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/rosjava/android-apps/cli/config"
	"github.com/rosjava/android-apps/cli/util"
)

// ConfigName is a configuration file name searched in the working directory.
const ConfigName = "create-app.yaml"

// GetDefaultCliOpts returns default create-app options.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Vars: map[string]string{},
	}
}

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated relative to configDir.
func adjustPathWithConfigLocation(filePath, configDir string) (string, error) {
	if filePath == "" {
		return "", nil
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// getConfigPath returns path to the configuration file. Explicitly set configPath
// must exist, otherwise ConfigName is looked up in workDir.
func getConfigPath(configPath, workDir string) (string, error) {
	if configPath != "" {
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(workDir, configPath)
		}
		foundPath, err := util.GetYamlFileName(configPath, true)
		if err != nil {
			return "", fmt.Errorf("failed to find configuration file %q: %w", configPath, err)
		}
		return foundPath, nil
	}
	return util.GetYamlFileName(filepath.Join(workDir, ConfigName), false)
}

// GetCliOpts returns create-app options from the config file located at path
// configPath or found in workDir. Returns options and the used config file path,
// empty if no configuration file is found.
func GetCliOpts(configPath, workDir string) (*config.CliOpts, string, error) {
	cliOpts := GetDefaultCliOpts()

	configPath, err := getConfigPath(configPath, workDir)
	if err != nil {
		return nil, "", err
	}
	if configPath == "" {
		return cliOpts, "", nil
	}

	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse create-app configuration: %s", err)
	}

	if _, found := rawConfigOpts["create_app"]; !found {
		return nil, "",
			fmt.Errorf("failed to parse create-app configuration: missing create_app section")
	}
	cfg := config.Config{CliConfig: cliOpts}
	if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse create-app configuration: %s", err)
	}

	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, "", err
	}
	if cfg.CliConfig.Template, err = adjustPathWithConfigLocation(cfg.CliConfig.Template,
		configDir); err != nil {
		return nil, "", err
	}

	return cfg.CliConfig, configPath, nil
}
