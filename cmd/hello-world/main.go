package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/energy-systems/hello-world/internal/config"
	"github.com/energy-systems/hello-world/internal/gui/app"
)

// main must keep running on the main goroutine: fyne drives the native
// event loop from it and dispatches every UI callback there.
func main() {
	configPath := flag.String("config", "", "Path to configuration file (defaults are used when empty)")
	passive := flag.Bool("passive", false, "Show the button without registering a click handler")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *passive {
		cfg.GUI.Interactive = false
	}

	logger, err := createLogger(cfg.Application.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("session", uuid.New().String()))
	logger.Info("Starting application",
		zap.String("name", cfg.Application.Name),
		zap.String("version", cfg.Application.Version))

	app.NewApplication(logger, cfg).Run()
}
