package config

// Config used to store all information from the
// create-app.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"create_app" yaml:"create_app"`
}

// CliOpts stores information about create-app configuration.
// Filled in when parsing the create-app.yaml configuration file.
//
// create-app.yaml file format:
// create_app:
//   template: path
//   delimiter: string
//   follow_up_message: string
//   vars:
//     NAME: value

// CliOpts is used to store all create-app options.
type CliOpts struct {
	// Template is a path to the application template directory. The built-in
	// template is used if empty.
	Template string `mapstructure:"template" yaml:"template"`
	// Delimiter surrounds tokens in template files.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	// FollowUpMessage is printed after the application is created.
	FollowUpMessage string `mapstructure:"follow_up_message" yaml:"follow_up_message"`
	// Vars are additional tokens and their replacements.
	Vars map[string]string `mapstructure:"vars" yaml:"vars"`
}
