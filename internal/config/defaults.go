package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"verbose":     false,
		"checkFields": false,
		"debug":       false,
		"noColor":     false,
		"tagKey":      "json",

		"tags.extensions":  []string{".go"},
		"tags.excludeDirs": []string{"bundle", "dependency", "charts"},

		"keys.extensions":   []string{".yaml"},
		"keys.excludeDirs":  []string{"dependency", "templates", ".github"},
		"keys.excludeFiles": []string{"swagger.yaml"},
	}
}
