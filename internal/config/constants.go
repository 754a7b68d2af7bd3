package config

// SourceFileExtensions are the recognized program-tree file extensions.
var SourceFileExtensions = []string{".yaml", ".yml", ".json"}

// ConfigFileNames are searched, in order, in each directory by FindConfig.
var ConfigFileNames = []string{"miniscript.yaml", "miniscript.yml"}

// Log levels accepted by the log_level setting and the -l flag.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Log formats accepted by the log_format setting.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Colour modes accepted by the color setting and the -C flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Defaults used when neither a flag nor the config file sets a value.
const (
	DefaultLogLevel  = LogLevelError
	DefaultLogFormat = LogFormatText
	DefaultColor     = ColorNever
)
