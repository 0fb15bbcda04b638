package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// config holds the defaults read from the environment. Flags override them.
type config struct {
	Camera     string
	Megapixels float64
	Output     string
	Out        string
	Lang       string
}

// loadEnv reads .env into the process environment when present.
func loadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func loadConfig() (config, error) {
	mp, err := getEnvFloat("PRINTSIZE_MEGAPIXELS", 0)
	if err != nil {
		return config{}, err
	}
	return config{
		Camera:     getEnv("PRINTSIZE_CAMERA", ""),
		Megapixels: mp,
		Output:     getEnv("PRINTSIZE_OUTPUT", "text"),
		Out:        getEnv("PRINTSIZE_OUT", ""),
		Lang:       getEnv("PRINTSIZE_LANG", "en"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return f, nil
}
