package main

import (
	"log/slog"
	"os"

	"github.com/oliverbestmann/windshield/orion"
)

func main() {
	level := slog.LevelInfo
	if value := os.Getenv("WINDSHIELD_LOG_LEVEL"); value != "" {
		if err := level.UnmarshalText([]byte(value)); err != nil {
			level = slog.LevelInfo
		}
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))

	orion.Handle(orion.Run(orion.RunOptions{}), "windshield")
}
