package settings

type Settings struct {
	// The target database engine identifier (see the engine package).
	Engine string

	// Optional file path for log output, in addition to the screen.
	LogFile string

	// Strongly verbose logging
	Verbose bool

	// Development-style logging and output
	Debug bool

	// Print log messages to the screen
	PrintToScreen bool
}

var instance *Settings

// GetSettings returns the global settings instance, creating it with
// defaults on first use.
func GetSettings() *Settings {
	if instance == nil {
		instance = &Settings{
			Engine:        "mongo",
			PrintToScreen: true,
		}
	}
	return instance
}
