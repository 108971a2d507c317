package config

const (
	defaultDatabasePath = "~/.local/share/namebank/names.json"
	defaultLogDir       = "~/.local/share/namebank/logs"
	defaultHistoryPath  = "~/.local/share/namebank/history.db"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Database: defaultDatabasePath,
			LogDir:   defaultLogDir,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
