package steps

import (
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/otiai10/copy"
	"github.com/rosjava/android-apps/cli/create/builtin_templates"
	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/create/internal/app_template"
	"github.com/rosjava/android-apps/cli/util"
)

// CopyAppTemplate represents application template copy step.
type CopyAppTemplate struct {
}

// Run copies application template to target application directory. The built-in
// template is used if no template path is set.
func (CopyAppTemplate) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	if templateCtx.AppPath == "" {
		return fmt.Errorf("application directory is not set")
	}

	if createCtx.TemplatePath == "" {
		log.Debugf("Using built-in template")
		if err := builtin_templates.Extract(templateCtx.AppPath); err != nil {
			return fmt.Errorf("built-in template extraction failed: %w", err)
		}
		return nil
	}

	templatePath := createCtx.TemplatePath
	if !filepath.IsAbs(templatePath) {
		templatePath = filepath.Join(createCtx.WorkDir, templatePath)
	}
	if !util.IsDir(templatePath) {
		return fmt.Errorf("template directory %q is not found", templatePath)
	}

	log.Infof("Using template from %s", templatePath)
	err := copy.Copy(templatePath, templateCtx.AppPath, copy.Options{
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Shallow
		},
	})
	if err != nil {
		return fmt.Errorf("template copying failed: %w", err)
	}
	return nil
}
