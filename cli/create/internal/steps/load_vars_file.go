package steps

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/create/internal/app_template"
)

// LoadVarsFile represents variables file load step.
type LoadVarsFile struct {
}

// Run loads variables from the file. Relative path is resolved against the working
// directory. Empty lines and lines starting with # are skipped.
func (LoadVarsFile) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	if createCtx.VarsFile == "" { // Skip if no file specified.
		return nil
	}

	varsFilePath := createCtx.VarsFile
	if !filepath.IsAbs(varsFilePath) {
		varsFilePath = filepath.Join(createCtx.WorkDir, varsFilePath)
	}

	varsFile, err := os.Open(varsFilePath)
	if err != nil {
		return fmt.Errorf("vars file loading error: %w", err)
	}
	defer varsFile.Close()

	scanner := bufio.NewScanner(varsFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		varDef, err := parseVarDefinition(line)
		if err != nil {
			return fmt.Errorf("failed to load vars from %s: %w", varsFilePath, err)
		}
		log.Debugf("Setting var from vars file: %s = %s", varDef.name, varDef.value)
		templateCtx.Vars[varDef.name] = varDef.value
	}

	return scanner.Err()
}
