package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Notifier displays a message to the user.
type Notifier interface {
	Notify(message string)
}

// DialogNotifier shows each message as a modal information dialog over its
// parent window. The dialog carries the toolkit's OK button and blocks the
// parent until dismissed.
type DialogNotifier struct {
	parent fyne.Window
	title  string
}

func NewDialogNotifier(parent fyne.Window, title string) *DialogNotifier {
	return &DialogNotifier{parent: parent, title: title}
}

func (n *DialogNotifier) Notify(message string) {
	d := dialog.NewInformation(n.title, message, n.parent)
	d.Show()
}
