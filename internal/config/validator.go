package config

import "fmt"

// Insecure example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Warnings reports settings that work but are probably a mistake
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StoreDriver == StorePostgres && (c.DBPassword == ExampleDBPassword || c.DBPassword == "postgres") {
		warnings = append(warnings, "DB_PASSWORD appears to be a default value - please use a secure password")
	}

	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.Environment != DefaultEnvironment {
		if c.APIKey == "" {
			warnings = append(warnings, fmt.Sprintf("API_KEY is not set in %s - mutating endpoints are open", c.Environment))
		}
		if c.StoreDriver == StoreMemory {
			warnings = append(warnings, fmt.Sprintf("STORE_DRIVER is %s in %s - checkpoints are lost on restart", StoreMemory, c.Environment))
		}
	}

	return warnings
}
