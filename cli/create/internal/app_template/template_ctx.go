package app_template

import "github.com/rosjava/android-apps/cli/templates/engines"

// TemplateCtx contains an information required for application template rendering.
type TemplateCtx struct {
	// AppPath is a path to application directory. Application template will be
	// instantiated in this directory.
	AppPath string
	// Vars is a map of tokens to their replacements.
	Vars map[string]string
	// Engine is a template engine to use for template rendering.
	Engine engines.TemplateEngine
}

// NewTemplateContext creates new application template context.
func NewTemplateContext() TemplateCtx {
	var ctx TemplateCtx
	ctx.Vars = make(map[string]string)
	ctx.Engine = engines.NewDefaultEngine()
	return ctx
}
