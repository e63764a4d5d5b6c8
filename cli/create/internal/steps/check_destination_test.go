package steps

import (
	"os"
	"path/filepath"
	"testing"

	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/create/internal/app_template"
	"github.com/stretchr/testify/require"
)

func TestCheckDestinationFromWorkDir(t *testing.T) {
	workDir := t.TempDir()
	createCtx := create_ctx.CreateCtx{AppName: "Rover", WorkDir: workDir}
	templateCtx := app_template.NewTemplateContext()

	require.NoError(t, CheckDestination{}.Run(&createCtx, &templateCtx))
	require.Equal(t, filepath.Join(workDir, "rover"), templateCtx.AppPath)
	require.NoDirExists(t, templateCtx.AppPath)
}

func TestCheckDestinationDstDir(t *testing.T) {
	workDir := t.TempDir()
	createCtx := create_ctx.CreateCtx{
		AppName:        "Rover",
		WorkDir:        workDir,
		DestinationDir: "apps",
	}
	templateCtx := app_template.NewTemplateContext()

	require.NoError(t, CheckDestination{}.Run(&createCtx, &templateCtx))
	require.Equal(t, filepath.Join(workDir, "apps", "rover"), templateCtx.AppPath)

	dstDir := t.TempDir()
	createCtx.DestinationDir = dstDir
	require.NoError(t, CheckDestination{}.Run(&createCtx, &templateCtx))
	require.Equal(t, filepath.Join(dstDir, "rover"), templateCtx.AppPath)
}

func TestCheckDestinationAppDir(t *testing.T) {
	appDir := filepath.Join(t.TempDir(), "SomeDir")
	createCtx := create_ctx.CreateCtx{AppDir: appDir}
	templateCtx := app_template.NewTemplateContext()

	require.NoError(t, CheckDestination{}.Run(&createCtx, &templateCtx))
	require.Equal(t, appDir, templateCtx.AppPath)
}

func TestCheckDestinationExists(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workDir, "rover"), 0o755))

	createCtx := create_ctx.CreateCtx{AppName: "Rover", WorkDir: workDir}
	templateCtx := app_template.NewTemplateContext()
	err := CheckDestination{}.Run(&createCtx, &templateCtx)
	require.ErrorIs(t, err, ErrDestinationExists)
	require.EqualError(t, err,
		"destination already exists: "+filepath.Join(workDir, "rover"))
	require.Equal(t, "", templateCtx.AppPath)

	// Regular file is an existing destination too.
	filePath := filepath.Join(workDir, "teleop")
	require.NoError(t, os.WriteFile(filePath, []byte{}, 0o644))
	createCtx.AppName = "Teleop"
	require.ErrorIs(t, CheckDestination{}.Run(&createCtx, &templateCtx), ErrDestinationExists)
}

func TestCheckDestinationInvalidAppName(t *testing.T) {
	for _, appName := range []string{"", ".", "..", "a/b", `a\b`} {
		t.Run(appName, func(t *testing.T) {
			createCtx := create_ctx.CreateCtx{AppName: appName, WorkDir: t.TempDir()}
			templateCtx := app_template.NewTemplateContext()
			require.Error(t, CheckDestination{}.Run(&createCtx, &templateCtx))
		})
	}
}
