package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/rosjava/android-apps/cli/configure"
	"github.com/rosjava/android-apps/cli/create"
	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/util"
	"github.com/rosjava/android-apps/cli/version"
	"github.com/spf13/cobra"
)

var (
	createCtx   create_ctx.CreateCtx
	configPath  string
	verboseMode bool
	rootCmd     *cobra.Command

	// errAppNameArg is returned if the application name is missing or more than
	// one positional argument is provided.
	errAppNameArg = util.NewArgError("exactly one application name argument is required")
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	createCtx = create_ctx.CreateCtx{}
	configPath = ""
	verboseMode = false

	rootCmd := &cobra.Command{
		Use:   "create-app <AppName> [flags]",
		Short: "Create a rosjava Android application",
		Long: `Create a rosjava Android application skeleton from a template.

The template is copied to a directory named after the lowercased application name.
Tokens are replaced in file contents and directory names:
	@APPNAME_CAMEL@ / APPNAME_CAMEL: application name as provided.
	@APPNAME_LOWER@ / APPNAME_LOWER: lowercased application name.`,
		Example: `
# Create Rover application in ./rover using the built-in template.

    $ create-app Rover

# Create Rover application in /opt/apps/rover using a custom template.

    $ create-app Rover --template ./app_template --dst /opt/apps

# Create an application with an additional token.

    $ create-app Teleop --var ORG=osrf`,
		Version: version.GetVersion(true, false),
		Args:    cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			err := internalCreateModule(cmd, args)
			util.HandleCmdErr(cmd, err)
		},
	}

	rootCmd.Flags().StringVarP(&createCtx.DestinationDir, "dst", "d", "",
		"Path to the directory where an application will be created")
	rootCmd.Flags().StringVarP(&createCtx.TemplatePath, "template", "t", "",
		"Path to the application template directory")
	rootCmd.Flags().StringArrayVar(&createCtx.VarsFromCli, "var", []string{},
		"Variable definition. Usage: --var VAR_NAME=value")
	rootCmd.Flags().StringVar(&createCtx.VarsFile, "vars-file", "",
		"Variables definition file path")
	rootCmd.Flags().StringVar(&createCtx.Delimiter, "delimiter", "",
		`Token delimiter in file contents (default "@")`)
	rootCmd.Flags().BoolVarP(&createCtx.SilentMode, "quiet", "q", false,
		"Do not print follow-up message")
	rootCmd.Flags().StringVarP(&configPath, "cfg", "c", "",
		"Path to configuration file")
	rootCmd.Flags().BoolVarP(&verboseMode, "verbose", "V", false, "Verbose output")

	log.SetHandler(cli.Default)

	return rootCmd
}

// internalCreateModule creates an application using flags and configuration file.
func internalCreateModule(cmd *cobra.Command, args []string) error {
	if verboseMode {
		log.SetLevel(log.DebugLevel)
	}
	if len(args) != 1 {
		return errAppNameArg
	}

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	cliOpts, cfgPath, err := configure.GetCliOpts(configPath, workDir)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		log.Debugf("Using configuration file %s", cfgPath)
	}

	ctx := createCtx
	ctx.WorkDir = workDir
	if err := create.FillCtx(cliOpts, &ctx, args); err != nil {
		return err
	}

	return create.Run(&ctx, cmd.OutOrStdout())
}

// Execute root command.
func Execute() {
	if rootCmd == nil {
		rootCmd = NewCmdRoot()
	}
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}
