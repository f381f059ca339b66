package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. In development (GIN_MODE unset
// or "debug") it uses the human-readable console writer.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339

	if mode := os.Getenv("GIN_MODE"); mode == "" || mode == "debug" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Str("service", "rps-server").Logger()
		return
	}

	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "rps-server").
		Logger()
}
