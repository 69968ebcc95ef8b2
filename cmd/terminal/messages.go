package main

import (
	"github.com/sevigo/stashbot/internal/app"
)

// Indicates that the core application services have been initialized.
type appInitializedMsg struct {
	app     *app.App
	cleanup func()
	err     error
}

// outputMsg carries markdown produced by a command.
type outputMsg struct{ markdown string }

// A generic error message for reporting failures from commands.
type errorMsg struct{ err error }

func (e errorMsg) Error() string {
	return e.err.Error()
}
