package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"

	"github.com/energy-systems/hello-world/internal/config"
	"github.com/energy-systems/hello-world/internal/gui"
)

// Application represents the main GUI application
type Application struct {
	logger *zap.Logger
	cfg    *config.Config

	// Fyne app and window
	fyneApp fyne.App
	window  fyne.Window

	mainWindow *gui.MainWindow
}

// NewApplication creates the application on the native driver.
func NewApplication(logger *zap.Logger, cfg *config.Config) *Application {
	return NewApplicationWith(app.New(), logger, cfg)
}

// NewApplicationWith creates the application on an existing fyne app.
func NewApplicationWith(fyneApp fyne.App, logger *zap.Logger, cfg *config.Config) *Application {
	if cfg == nil {
		cfg = config.Default()
	}

	// Apply dark theme if configured
	if cfg.GUI.Theme == "dark" {
		fyneApp.Settings().SetTheme(theme.DarkTheme())
	}

	window := fyneApp.NewWindow(cfg.GUI.Title)
	window.Resize(fyne.NewSize(float32(cfg.GUI.Width), float32(cfg.GUI.Height)))

	mainWindow := gui.NewMainWindow(logger, window, gui.Options{
		Interactive: cfg.GUI.Interactive,
	})

	logger.Info("GUI: application initialised",
		zap.String("title", cfg.GUI.Title),
		zap.Bool("interactive", cfg.GUI.Interactive),
		zap.String("theme", cfg.GUI.Theme))

	return &Application{
		logger:     logger,
		cfg:        cfg,
		fyneApp:    fyneApp,
		window:     window,
		mainWindow: mainWindow,
	}
}

func (a *Application) MainWindow() *gui.MainWindow { return a.mainWindow }

// Run shows the window and blocks in the event loop until it is closed.
// It must be called from the main goroutine.
func (a *Application) Run() {
	a.window.ShowAndRun()
	a.logger.Info("GUI: event loop finished")
}
