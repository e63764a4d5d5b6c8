package steps

import (
	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/create/internal/app_template"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// AppNameCamelVar is replaced with the application name as provided by user.
	AppNameCamelVar = "APPNAME_CAMEL"
	// AppNameLowerVar is replaced with the lowercased application name.
	AppNameLowerVar = "APPNAME_LOWER"
)

// LowerAppName returns lowercased application name. It is used for package
// and directory names.
func LowerAppName(appName string) string {
	return cases.Lower(language.Und).String(appName)
}

// SetPredefinedVariables represents a step for setting pre-defined variables.
type SetPredefinedVariables struct {
}

// Run sets predefined variables values.
func (SetPredefinedVariables) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	templateCtx.Vars[AppNameCamelVar] = createCtx.AppName
	templateCtx.Vars[AppNameLowerVar] = LowerAppName(createCtx.AppName)
	return nil
}

// SetConfigVariables represents a step for setting variables from configuration file.
type SetConfigVariables struct {
}

// Run sets variables defined in configuration file.
func (SetConfigVariables) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	for varName, value := range createCtx.Vars {
		templateCtx.Vars[varName] = value
	}
	return nil
}
