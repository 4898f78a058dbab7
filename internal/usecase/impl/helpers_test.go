package impl

import (
	"io"
	"log/slog"

	"console/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Listing.DefaultLimit = 10

	return cfg
}
