package driven

// AppConfigStore provides access to application-level configuration
// (database directory, report directory). Implementations handle
// persistence (e.g., TOML files) and type conversion. This is distinct
// from SettingStore, which lives inside the database itself.
type AppConfigStore interface {
	// GetString retrieves a string configuration value.
	// Returns empty string if the key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if the key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value. The value is persisted immediately.
	Set(key string, value any) error

	// Path returns the configuration file path.
	Path() string
}
