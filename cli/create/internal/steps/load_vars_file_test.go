package steps

import (
	"os"
	"path/filepath"
	"testing"

	create_ctx "github.com/rosjava/android-apps/cli/create/context"
	"github.com/rosjava/android-apps/cli/create/internal/app_template"
	"github.com/stretchr/testify/require"
)

func TestLoadVarsFile(t *testing.T) {
	workDir, err := os.Getwd()
	require.NoError(t, err)

	createCtx := create_ctx.CreateCtx{WorkDir: workDir, VarsFile: "testdata/vars-file.txt"}
	templateCtx := app_template.NewTemplateContext()
	require.NoError(t, LoadVarsFile{}.Run(&createCtx, &templateCtx))
	require.Equal(t, map[string]string{"ORG": "osrf", "API_LEVEL": "17"}, templateCtx.Vars)
}

func TestLoadVarsFileVariablesAlreadySet(t *testing.T) {
	varsFile, err := filepath.Abs("testdata/vars-file.txt")
	require.NoError(t, err)

	createCtx := create_ctx.CreateCtx{VarsFile: varsFile}
	templateCtx := app_template.NewTemplateContext()
	templateCtx.Vars["ORG"] = "ros"
	require.NoError(t, LoadVarsFile{}.Run(&createCtx, &templateCtx))
	require.Equal(t, map[string]string{"ORG": "osrf", "API_LEVEL": "17"}, templateCtx.Vars)
}

func TestLoadVarsFileNotSet(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := app_template.NewTemplateContext()
	require.NoError(t, LoadVarsFile{}.Run(&createCtx, &templateCtx))
	require.Empty(t, templateCtx.Vars)
}

func TestNonExistingVarsFile(t *testing.T) {
	createCtx := create_ctx.CreateCtx{
		WorkDir:  t.TempDir(),
		VarsFile: "non-existing-vars-file.txt",
	}
	templateCtx := app_template.NewTemplateContext()
	err := LoadVarsFile{}.Run(&createCtx, &templateCtx)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorContains(t, err, "vars file loading error")
}

func TestLoadVarsFileWrongFormat(t *testing.T) {
	workDir, err := os.Getwd()
	require.NoError(t, err)

	createCtx := create_ctx.CreateCtx{
		WorkDir:  workDir,
		VarsFile: "testdata/invalid_vars_file.txt",
	}
	templateCtx := app_template.NewTemplateContext()
	require.ErrorContains(t, LoadVarsFile{}.Run(&createCtx, &templateCtx),
		"wrong variable definition format: ORG=")
}
