package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"backend":    "auto",
		"log_level":  "warn",
		"log_format": "text",
	}
}
