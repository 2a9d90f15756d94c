package utils

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const ENV_FILENAME = ".env"

// InitEnvironmentVariables loads a .env file from the working directory when
// one exists. The tool has workable defaults for every variable, so a missing
// file is not an error.
func InitEnvironmentVariables() error {
	if _, err := os.Stat(ENV_FILENAME); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(ENV_FILENAME); err != nil {
		return err
	}

	log.Infof("Loaded environment variables from %s", ENV_FILENAME)

	return nil
}
