package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/energy-systems/hello-world/internal/gui/state"
)

const (
	// ButtonLabel is the text on the window's only control.
	ButtonLabel = "Hello World!"
	// Greeting is the body of the dialog shown on activation.
	Greeting = "Hello World!"
)

// Options selects the window variant.
type Options struct {
	// Interactive registers the activation handler on the button. Without it
	// the button never produces a notification.
	Interactive bool

	// Notifier receives the greeting on activation. Nil means a modal
	// information dialog over the window.
	Notifier Notifier
}

// MainWindow hosts a single button inside a top-level window.
type MainWindow struct {
	logger   *zap.Logger
	window   fyne.Window
	button   *widget.Button
	notifier Notifier
	state    *state.WindowState

	interactive bool
}

// NewMainWindow builds the button and attaches it as the window content.
// The content is never replaced afterwards.
func NewMainWindow(logger *zap.Logger, window fyne.Window, opts Options) *MainWindow {
	if logger == nil {
		logger = zap.NewNop()
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = NewDialogNotifier(window, "")
	}

	mw := &MainWindow{
		logger:      logger,
		window:      window,
		notifier:    notifier,
		state:       state.NewWindowState(),
		interactive: opts.Interactive,
	}

	mw.button = widget.NewButton(ButtonLabel, nil)
	if opts.Interactive {
		mw.button.OnTapped = mw.handleActivation
	}

	window.SetContent(mw.button)
	window.SetOnClosed(mw.handleClosed)

	logger.Debug("GUI: main window built",
		zap.String("label", ButtonLabel),
		zap.Bool("interactive", opts.Interactive))

	return mw
}

// handleActivation runs on the UI goroutine for every button tap.
func (mw *MainWindow) handleActivation() {
	mw.logger.Info("GUI: button activated")
	mw.notifier.Notify(Greeting)
}

func (mw *MainWindow) handleClosed() {
	if mw.state.MarkClosed() {
		mw.logger.Info("GUI: window closed")
	}
}

func (mw *MainWindow) Window() fyne.Window { return mw.window }

func (mw *MainWindow) Button() *widget.Button { return mw.button }

func (mw *MainWindow) Interactive() bool { return mw.interactive }

func (mw *MainWindow) State() state.Lifecycle { return mw.state.Lifecycle() }

// Children lists the controls owned by the window.
func (mw *MainWindow) Children() []fyne.CanvasObject {
	if c := mw.window.Content(); c != nil {
		return []fyne.CanvasObject{c}
	}
	return nil
}
