package steps

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/create/internal/app_template"
)

const formatError = `wrong variable definition format: %s
Usage: --var "VAR_NAME=value"`

type varDefinition struct {
	name  string
	value string
}

// parseVarDefinition parses NAME=value variable definition.
func parseVarDefinition(text string) (varDefinition, error) {
	varName, value, found := strings.Cut(strings.TrimSpace(text), "=")
	if !found || varName == "" || value == "" {
		return varDefinition{}, fmt.Errorf(formatError, text)
	}
	return varDefinition{name: varName, value: value}, nil
}

// FillTemplateVarsFromCli represents a step for setting variables passed in command line.
type FillTemplateVarsFromCli struct {
}

// Run collects variables passed using command line args.
func (FillTemplateVarsFromCli) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	for _, varDefinition := range createCtx.VarsFromCli {
		varDef, err := parseVarDefinition(varDefinition)
		if err != nil {
			return err
		}
		log.Debugf("Setting var from CLI: %s = %s", varDef.name, varDef.value)
		templateCtx.Vars[varDef.name] = varDef.value
	}
	return nil
}
