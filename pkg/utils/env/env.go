package env

import "os"

// Get returns the value of key, or the optional default when key is unset.
func Get(key string, def ...string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}
