package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/energy-systems/hello-world/internal/gui/state"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

func newTestWindow(t *testing.T, opts Options) (*MainWindow, *observer.ObservedLogs) {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("Hello World")

	core, logs := observer.New(zapcore.DebugLevel)
	return NewMainWindow(zap.New(core), w, opts), logs
}

func TestMainWindowHasSingleButton(t *testing.T) {
	tests := map[string]bool{
		"interactive": true,
		"passive":     false,
	}
	for name, interactive := range tests {
		t.Run(name, func(t *testing.T) {
			mw, _ := newTestWindow(t, Options{Interactive: interactive, Notifier: &recordingNotifier{}})

			children := mw.Children()
			require.Len(t, children, 1)

			button, ok := children[0].(*widget.Button)
			require.True(t, ok, "child should be a button")
			assert.Same(t, mw.Button(), button)
			assert.Equal(t, "Hello World!", button.Text)
			assert.Equal(t, interactive, mw.Interactive())
			assert.Equal(t, state.Open, mw.State())
		})
	}
}

func TestActivationNotifiesOnce(t *testing.T) {
	n := &recordingNotifier{}
	mw, logs := newTestWindow(t, Options{Interactive: true, Notifier: n})

	test.Tap(mw.Button())

	assert.Equal(t, []string{"Hello World!"}, n.messages)
	assert.Equal(t, 1, logs.FilterMessage("GUI: button activated").Len())
	require.Len(t, mw.Children(), 1)
	assert.Same(t, mw.Button(), mw.Children()[0])
	assert.Equal(t, state.Open, mw.State())
}

func TestRepeatedActivationsAreIndependent(t *testing.T) {
	n := &recordingNotifier{}
	mw, _ := newTestWindow(t, Options{Interactive: true, Notifier: n})

	for i := 0; i < 3; i++ {
		test.Tap(mw.Button())
		require.Len(t, n.messages, i+1)
		assert.Equal(t, "Hello World!", n.messages[i])
	}
	assert.Equal(t, "Hello World!", mw.Button().Text)
}

func TestPassiveWindowNeverNotifies(t *testing.T) {
	n := &recordingNotifier{}
	mw, logs := newTestWindow(t, Options{Interactive: false, Notifier: n})

	for i := 0; i < 5; i++ {
		test.Tap(mw.Button())
	}

	assert.Empty(t, n.messages)
	assert.Nil(t, mw.Button().OnTapped)
	assert.Equal(t, 0, logs.FilterMessage("GUI: button activated").Len())
}

func TestActivationShowsModalDialog(t *testing.T) {
	mw, _ := newTestWindow(t, Options{Interactive: true})
	overlays := mw.Window().Canvas().Overlays()

	assert.Nil(t, overlays.Top())

	test.Tap(mw.Button())

	top := overlays.Top()
	require.NotNil(t, top, "dialog should be shown as an overlay")
	_, modal := top.(*widget.PopUp)
	assert.True(t, modal)
	assert.NotNil(t, findLabel(top, "Hello World!"), "dialog body")

	ok := findButton(top, "OK")
	require.NotNil(t, ok, "dialog should carry an OK button")
	test.Tap(ok)

	assert.Nil(t, overlays.Top())
	require.Len(t, mw.Children(), 1)
	assert.Same(t, mw.Button(), mw.Children()[0])
	assert.Equal(t, state.Open, mw.State())
}

func TestDialogBlocksWindowUntilDismissed(t *testing.T) {
	mw, logs := newTestWindow(t, Options{Interactive: true})
	w := mw.Window()
	w.Resize(fyne.NewSize(300, 200))
	overlays := w.Canvas().Overlays()
	corner := fyne.NewPos(10, 10)

	// the corner lies on the button, outside the centred dialog body
	test.TapCanvas(w.Canvas(), corner)
	require.Len(t, overlays.List(), 1)
	dlg := overlays.Top()

	for i := 0; i < 3; i++ {
		test.TapCanvas(w.Canvas(), corner)
	}
	assert.Len(t, overlays.List(), 1)
	assert.Same(t, dlg, overlays.Top())
	assert.True(t, dlg.Visible())
	assert.Equal(t, 1, logs.FilterMessage("GUI: button activated").Len())

	ok := findButton(dlg, "OK")
	require.NotNil(t, ok)
	test.Tap(ok)
	require.Nil(t, overlays.Top())

	test.TapCanvas(w.Canvas(), corner)
	assert.Len(t, overlays.List(), 1)
	assert.Equal(t, 2, logs.FilterMessage("GUI: button activated").Len())
}

func TestCloseMovesToClosed(t *testing.T) {
	mw, logs := newTestWindow(t, Options{Interactive: true, Notifier: &recordingNotifier{}})

	mw.Window().Close()

	assert.Equal(t, state.Closed, mw.State())
	assert.Equal(t, 1, logs.FilterMessage("GUI: window closed").Len())
}

func walk(obj fyne.CanvasObject, visit func(fyne.CanvasObject) bool) bool {
	if obj == nil {
		return false
	}
	if visit(obj) {
		return true
	}
	switch o := obj.(type) {
	case *fyne.Container:
		for _, child := range o.Objects {
			if walk(child, visit) {
				return true
			}
		}
	case fyne.Widget:
		for _, child := range test.WidgetRenderer(o).Objects() {
			if walk(child, visit) {
				return true
			}
		}
	}
	return false
}

func findLabel(root fyne.CanvasObject, text string) *widget.Label {
	var found *widget.Label
	walk(root, func(o fyne.CanvasObject) bool {
		if l, ok := o.(*widget.Label); ok && l.Text == text {
			found = l
			return true
		}
		return false
	})
	return found
}

func findButton(root fyne.CanvasObject, text string) *widget.Button {
	var found *widget.Button
	walk(root, func(o fyne.CanvasObject) bool {
		if b, ok := o.(*widget.Button); ok && b.Text == text {
			found = b
			return true
		}
		return false
	})
	return found
}
