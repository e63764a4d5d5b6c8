package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/otiai10/copy"
	"github.com/stretchr/testify/require"
)

const testTemplateDir = "testdata/app_template"

var appVars = map[string]string{
	AppNameCamelVar: "Rover",
	AppNameLowerVar: "rover",
}

// copyTestTemplate copies test template to a new directory and returns its path.
func copyTestTemplate(t *testing.T) string {
	t.Helper()
	appPath := filepath.Join(t.TempDir(), "rover")
	require.NoError(t, copy.Copy(testTemplateDir, appPath))
	return appPath
}

func requireFileContent(t *testing.T, path, expected string) {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, expected, string(content))
}
