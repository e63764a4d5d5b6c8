package builtin_templates

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rosjava/android-apps/cli/util"
)

//go:embed templates/*
var TemplatesFs embed.FS

// Name is the built-in application template directory name.
const Name = "app"

const (
	dirPermissions  = 0755
	filePermissions = 0644
)

// Extract writes built-in application template tree to dstPath.
func Extract(dstPath string) error {
	templateRoot := "templates/" + Name
	return fs.WalkDir(TemplatesFs, templateRoot,
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			relPath, err := filepath.Rel(templateRoot, path)
			if err != nil {
				return err
			}
			targetPath := filepath.Join(dstPath, relPath)
			if entry.IsDir() {
				return os.MkdirAll(targetPath, dirPermissions)
			}
			return util.FsCopyFileChangePerms(TemplatesFs, path, targetPath, filePermissions)
		})
}
