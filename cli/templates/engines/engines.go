// Package engines provides template engine interface and implementations.
package engines

// DefaultDelimiter is a marker surrounding a token in template file contents.
const DefaultDelimiter = "@"

// TemplateEngine is an interface to support to use for application template instantiation.
type TemplateEngine interface {
	// RenderFile replaces delimited tokens from data in the file content at path.
	// The file is rewritten only if its content changes. Returns true if the file
	// was rewritten.
	RenderFile(path string, data map[string]string) (bool, error)

	// RenderText replaces delimited tokens from data in the text. Returns
	// instantiated text.
	RenderText(in string, data map[string]string) string

	// RenderName returns the value of the token the name is equal to.
	// The second value is false if name is not a token.
	RenderName(name string, data map[string]string) (string, bool)
}

// NewDefaultEngine creates and returns default template engine.
func NewDefaultEngine() TemplateEngine {
	return NewTokenEngine(DefaultDelimiter)
}

// NewTokenEngine creates a token engine using delimiter to mark tokens in text.
func NewTokenEngine(delimiter string) TemplateEngine {
	return tokenEngine{delimiter: delimiter}
}
