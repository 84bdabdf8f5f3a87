package askpod

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is an explicit snapshot of the settings the runtime needs. It is
// threaded as an argument to whichever component needs it instead of being
// read from the environment ambiently.
type Config struct {
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Model         string
	DBPath        string
}

const DefaultModel = "gpt-4o-mini"

// LoadConfig reads the given dotenv files (or ".env" when none are given)
// into the process environment and returns a snapshot of the relevant keys.
// A missing dotenv file is not an error; the keys are simply left unset.
func LoadConfig(envFiles ...string) *Config {
	err := godotenv.Load(envFiles...)
	if err != nil {
		log.Println("Error loading .env file, falling back to environment variables")
	}

	return &Config{
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		Model:         getEnv("ASKPOD_MODEL", DefaultModel),
		DBPath:        getEnv("ASKPOD_DB", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
