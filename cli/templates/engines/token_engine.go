package engines

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type tokenEngine struct {
	delimiter string
}

// sortedTokens returns non-empty data keys in lexicographical order.
func sortedTokens(data map[string]string) []string {
	tokens := make([]string, 0, len(data))
	for token := range data {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	sort.Strings(tokens)
	return tokens
}

func (engine tokenEngine) replacer(data map[string]string) *strings.Replacer {
	tokens := sortedTokens(data)
	oldNew := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		oldNew = append(oldNew, engine.delimiter+token+engine.delimiter, data[token])
	}
	return strings.NewReplacer(oldNew...)
}

// RenderFile replaces tokens in the file at path. The new content is written to a
// temporary file in the same directory, which then replaces the original.
func (engine tokenEngine) RenderFile(path string, data map[string]string) (
	rewritten bool, err error,
) {
	stat, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("error getting file info %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("error reading %s: %w", path, err)
	}

	rendered := engine.replacer(data).Replace(string(content))
	if rendered == string(content) {
		return false, nil
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return false, fmt.Errorf("error creating temporary file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmpFile.Close()
			os.Remove(tmpFile.Name())
		}
	}()

	if _, err = tmpFile.WriteString(rendered); err != nil {
		return false, fmt.Errorf("error writing %s: %w", tmpFile.Name(), err)
	}
	if err = tmpFile.Chmod(stat.Mode().Perm()); err != nil {
		return false, fmt.Errorf("error changing permissions of %s: %w", tmpFile.Name(), err)
	}
	if err = tmpFile.Close(); err != nil {
		return false, fmt.Errorf("error closing %s: %w", tmpFile.Name(), err)
	}
	if err = os.Rename(tmpFile.Name(), path); err != nil {
		return false, fmt.Errorf("error replacing %s: %w", path, err)
	}
	return true, nil
}

// RenderText replaces tokens in text.
func (engine tokenEngine) RenderText(in string, data map[string]string) string {
	return engine.replacer(data).Replace(in)
}

// RenderName matches name against tokens without delimiters.
func (engine tokenEngine) RenderName(name string, data map[string]string) (string, bool) {
	if name == "" {
		return "", false
	}
	value, found := data[name]
	return value, found
}
