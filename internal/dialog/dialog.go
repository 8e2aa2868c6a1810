// Package dialog models the confirm and notification dialogs. At most one
// dialog of each kind is open at a time; opening another replaces it.
package dialog

import (
	"context"
	"sync"
)

// Kind selects how a dialog is presented.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindDanger  Kind = "danger"
)

// Dialog is the state of one dialog.
type Dialog struct {
	Open    bool   `json:"open"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

// Confirmer asks the operator to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) bool
}

// Notifier reports the outcome of an action.
type Notifier interface {
	Notify(kind Kind, title, message string)
}

// PromptFunc renders an open confirm dialog and returns the answer.
type PromptFunc func(ctx context.Context, d Dialog) bool

// ShowFunc renders an open notification dialog.
type ShowFunc func(d Dialog)

// Manager owns the confirm and notification dialog slots.
type Manager struct {
	prompt PromptFunc
	show   ShowFunc

	mu           sync.Mutex
	confirmation Dialog
	notification Dialog
}

// NewManager builds a Manager around rendering callbacks. A nil prompt
// dismisses every confirmation.
func NewManager(prompt PromptFunc, show ShowFunc) *Manager {
	return &Manager{prompt: prompt, show: show}
}

// Confirm opens the confirm dialog, waits for the answer and closes it.
func (m *Manager) Confirm(ctx context.Context, title, message string) bool {
	d := Dialog{Open: true, Title: title, Message: message, Kind: KindDanger}

	m.mu.Lock()
	m.confirmation = d
	m.mu.Unlock()

	ok := false
	if m.prompt != nil && ctx.Err() == nil {
		ok = m.prompt(ctx, d)
	}

	m.mu.Lock()
	m.confirmation = Dialog{}
	m.mu.Unlock()
	return ok
}

// Notify opens the notification dialog, replacing any open one.
func (m *Manager) Notify(kind Kind, title, message string) {
	d := Dialog{Open: true, Title: title, Message: message, Kind: kind}

	m.mu.Lock()
	m.notification = d
	m.mu.Unlock()

	if m.show != nil {
		m.show(d)
	}
}

// CloseNotification dismisses the notification dialog.
func (m *Manager) CloseNotification() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notification = Dialog{}
}

// Notification returns the current notification dialog.
func (m *Manager) Notification() Dialog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notification
}

// Confirmation returns the current confirm dialog.
func (m *Manager) Confirmation() Dialog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.confirmation
}

// Always is a Confirmer with a fixed answer, for --yes and tests.
type Always bool

// Confirm implements Confirmer.
func (a Always) Confirm(context.Context, string, string) bool {
	return bool(a)
}
