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

// RenderTemplate represents template render step.
type RenderTemplate struct{}

// rename renames entry of dirPath if its name is a token.
func rename(templateCtx *app_template.TemplateCtx, dirPath, name string) error {
	newName, found := templateCtx.Engine.RenderName(name, templateCtx.Vars)
	if !found || newName == name {
		return nil
	}

	oldPath := filepath.Join(dirPath, name)
	if newName == "" || newName == "." || newName == ".." ||
		strings.ContainsAny(newName, `/\`) {
		return fmt.Errorf("cannot rename %s: invalid name %q", oldPath, newName)
	}

	newPath := filepath.Join(dirPath, newName)
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("cannot rename %s: %s already exists", oldPath, newPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("error renaming %s to %s: %w", oldPath, newPath, err)
	}
	log.Debugf("Renamed %s to %s", oldPath, newPath)
	return nil
}

// render processes dirPath contents depth-first. All entries are listed before any
// of them is renamed, a subdirectory is renamed after its own contents are rendered.
func render(templateCtx *app_template.TemplateCtx, dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		entryPath := filepath.Join(dirPath, entry.Name())
		switch {
		case entry.IsDir():
			if err := render(templateCtx, entryPath); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			rewritten, err := templateCtx.Engine.RenderFile(entryPath, templateCtx.Vars)
			if err != nil {
				return err
			}
			if rewritten {
				log.Debugf("Rendered %s", entryPath)
			}
		default:
			log.Debugf("Skipping %s: not a regular file", entryPath)
			continue
		}

		if err := rename(templateCtx, dirPath, entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

// Run renders template in application directory.
func (RenderTemplate) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	if err := render(templateCtx, templateCtx.AppPath); err != nil {
		return fmt.Errorf("template instantiation error: %w", err)
	}
	return nil
}
