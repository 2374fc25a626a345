// Package config resolves cursecov settings from defaults, a config
// file, the environment and command-line flags, in increasing order of
// precedence.
package config

// Output formats accepted by the verbose report.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Defaults applied when no layer sets a value.
const (
	DefaultIncludePattern = "**/*.js,**/*.ts"
	DefaultIgnorePattern  = ""
	DefaultMinCoverage    = 30.0
	DefaultJobs           = 1
)

// Settings is the resolved configuration of a run.
type Settings struct {
	IncludePattern string
	IgnorePattern  string
	MinCoverage    float64
	Verbose        bool
	Format         string
	Jobs           int
}

// Layer is a partial configuration. Nil fields leave the value of
// lower-precedence layers in place.
type Layer struct {
	IncludePattern *string
	IgnorePattern  *string
	MinCoverage    *float64
	Verbose        *bool
	Format         *string
	Jobs           *int
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		IncludePattern: DefaultIncludePattern,
		IgnorePattern:  DefaultIgnorePattern,
		MinCoverage:    DefaultMinCoverage,
		Format:         FormatText,
		Jobs:           DefaultJobs,
	}
}
