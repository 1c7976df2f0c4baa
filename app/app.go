package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// App runs the browser as a full-screen program
type App struct {
	ctrl Controller
}

// NewApp creates an App over ctrl
func NewApp(ctrl Controller) *App {
	return &App{ctrl: ctrl}
}

// Run blocks until the user quits or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	updates, unsubscribe := a.ctrl.Subscribe()
	defer unsubscribe()

	model := NewModel(ctx, a.ctrl, updates)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
