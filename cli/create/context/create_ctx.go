package create_ctx

// CreateCtx contains information for creating applications from templates.
type CreateCtx struct {
	// AppName is application name to create. It is used as is for the camel case
	// name token and lowercased for the destination directory name.
	AppName string
	// WorkDir is create-app launch working directory.
	WorkDir string
	// DestinationDir is the path where an application directory will be created.
	// WorkDir is used if empty.
	DestinationDir string
	// AppDir is a full path to the application directory. If set, it is used as is
	// instead of the directory name derived from AppName.
	AppDir string
	// TemplatePath is a path to the template directory. The built-in template is
	// used if empty.
	TemplatePath string
	// Delimiter surrounds tokens in template file contents.
	Delimiter string
	// Vars are template variables definitions loaded from the configuration file.
	Vars map[string]string
	// VarsFromCli template variables definitions provided in command line.
	VarsFromCli []string
	// VarsFile is a file with variables definitions.
	VarsFile string
	// FollowUpMessage is printed after the application is created. Tokens are
	// substituted in it.
	FollowUpMessage string
	// SilentMode if set, disables follow-up message printing.
	SilentMode bool
}
