package create

import (
	"fmt"
	"io"

	"github.com/rosjava/android-apps/cli/config"
	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/create/internal/app_template"
	"github.com/rosjava/android-apps/cli/create/internal/steps"
	"github.com/rosjava/android-apps/cli/templates/engines"
	"github.com/rosjava/android-apps/cli/util"
)

// ErrDestinationExists is returned if the application directory is already present.
var ErrDestinationExists = steps.ErrDestinationExists

// FillCtx fills create context. Values already set from command line flags take
// precedence over configuration file values.
func FillCtx(cliOpts *config.CliOpts, createCtx *create_ctx.CreateCtx, args []string) error {
	if len(args) != 1 {
		return util.NewArgError(fmt.Sprintf(
			"requires exactly one application name argument, received %d", len(args)))
	}
	createCtx.AppName = args[0]

	if cliOpts == nil {
		return nil
	}
	if createCtx.TemplatePath == "" {
		createCtx.TemplatePath = cliOpts.Template
	}
	if createCtx.Delimiter == "" {
		createCtx.Delimiter = cliOpts.Delimiter
	}
	if createCtx.FollowUpMessage == "" {
		createCtx.FollowUpMessage = cliOpts.FollowUpMessage
	}
	if len(cliOpts.Vars) > 0 {
		createCtx.Vars = make(map[string]string, len(cliOpts.Vars))
		for varName, value := range cliOpts.Vars {
			createCtx.Vars[varName] = value
		}
	}

	return nil
}

// newTemplateCtx creates template context using the delimiter from create context.
func newTemplateCtx(createCtx *create_ctx.CreateCtx) app_template.TemplateCtx {
	templateCtx := app_template.NewTemplateContext()
	if createCtx.Delimiter != "" {
		templateCtx.Engine = engines.NewTokenEngine(createCtx.Delimiter)
	}
	return templateCtx
}

func runSteps(createCtx *create_ctx.CreateCtx, templateCtx *app_template.TemplateCtx,
	stepsChain []steps.Step,
) error {
	for _, step := range stepsChain {
		if err := step.Run(createCtx, templateCtx); err != nil {
			return err
		}
	}
	return nil
}

// Run creates an application from a template. Follow-up message is written to out.
func Run(createCtx *create_ctx.CreateCtx, out io.Writer) error {
	stepsChain := []steps.Step{
		steps.SetPredefinedVariables{},
		steps.SetConfigVariables{},
		steps.LoadVarsFile{},
		steps.FillTemplateVarsFromCli{},
		steps.CheckDestination{},
		steps.CopyAppTemplate{},
		steps.RenderTemplate{},
		steps.PrintFollowUpMessage{Writer: out},
	}

	templateCtx := newTemplateCtx(createCtx)
	return runSteps(createCtx, &templateCtx, stepsChain)
}

// Instantiate copies templateDir to destDir and replaces tokens in file contents
// and names. destDir must not exist. The built-in template is used if templateDir
// is empty.
func Instantiate(templateDir, destDir string, tokens map[string]string) error {
	if destDir == "" {
		return fmt.Errorf("destination directory cannot be empty")
	}
	createCtx := create_ctx.CreateCtx{
		AppDir:       destDir,
		TemplatePath: templateDir,
	}
	templateCtx := newTemplateCtx(&createCtx)
	for token, value := range tokens {
		templateCtx.Vars[token] = value
	}

	return runSteps(&createCtx, &templateCtx, []steps.Step{
		steps.CheckDestination{},
		steps.CopyAppTemplate{},
		steps.RenderTemplate{},
	})
}
