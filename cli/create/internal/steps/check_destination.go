package steps

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/create/internal/app_template"
)

// CheckDestination represents application directory check step.
type CheckDestination struct {
}

// validateAppName checks the application name can be used as a directory name.
func validateAppName(appName string) error {
	if appName == "" {
		return fmt.Errorf("application name cannot be empty")
	}
	if appName == "." || appName == ".." || strings.ContainsAny(appName, `/\`) {
		return fmt.Errorf("invalid application name %q: must be a single path element",
			appName)
	}
	return nil
}

// Run resolves target application directory and makes sure it does not exist.
func (CheckDestination) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	appDirectory := createCtx.AppDir
	if appDirectory == "" {
		if err := validateAppName(createCtx.AppName); err != nil {
			return err
		}
		baseDir := createCtx.DestinationDir
		if baseDir == "" {
			baseDir = createCtx.WorkDir
		}
		appDirectory = filepath.Join(baseDir, LowerAppName(createCtx.AppName))
	}
	if !filepath.IsAbs(appDirectory) {
		appDirectory = filepath.Join(createCtx.WorkDir, appDirectory)
	}
	appDirectory = filepath.Clean(appDirectory)

	if _, err := os.Lstat(appDirectory); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, appDirectory)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", appDirectory, err)
	}

	if createCtx.AppName != "" {
		log.Infof("Creating app %s in %s", createCtx.AppName, appDirectory)
	} else {
		log.Infof("Creating application in %s", appDirectory)
	}
	templateCtx.AppPath = appDirectory

	return nil
}
