// Package push registers this admin client for push notifications.
//
// Registration is best effort: the backend outcome never blocks or fails the
// caller, it is only logged.
package push

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/soley/admin-cli/internal/api"
	"github.com/soley/admin-cli/pkg/log"
)

const (
	Platform   = "web"
	DeviceType = "admin-dashboard"
)

// Backend is the part of *api.Client the registrar needs.
type Backend interface {
	RegisterPushToken(ctx context.Context, token api.PushToken) error
	DeletePushToken(ctx context.Context, fcmToken string) error
}

// Registrar announces push tokens to the backend.
type Registrar struct {
	backend Backend
	l       log.Logger
	now     func() time.Time
}

// NewRegistrar builds a Registrar.
func NewRegistrar(backend Backend, l log.Logger) *Registrar {
	if l == nil {
		l = log.NewNop()
	}
	return &Registrar{backend: backend, l: l, now: time.Now}
}

// DeviceID is the per-registration id, admin-web-<unix ms>.
func DeviceID(now time.Time) string {
	return fmt.Sprintf("admin-web-%d", now.UnixMilli())
}

// Register posts the token. It reports success but never returns an error.
func (r *Registrar) Register(ctx context.Context, fcmToken string) bool {
	fcmToken = strings.TrimSpace(fcmToken)
	if fcmToken == "" {
		r.l.Warnf(ctx, "push: empty token, not registering")
		return false
	}

	token := api.PushToken{
		FCMToken:   fcmToken,
		DeviceID:   DeviceID(r.now()),
		Platform:   Platform,
		DeviceType: DeviceType,
	}
	if err := r.backend.RegisterPushToken(ctx, token); err != nil {
		r.l.Errorf(ctx, "push: error registering token with backend: %v", err)
		return false
	}
	r.l.Infof(ctx, "push: token registered as %s", token.DeviceID)
	return true
}

// Go runs Register in the background; the returned channel closes when it is done.
func (r *Registrar) Go(ctx context.Context, fcmToken string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Register(ctx, fcmToken)
	}()
	return done
}

// Unregister removes the token. Failures are logged only.
func (r *Registrar) Unregister(ctx context.Context, fcmToken string) bool {
	if err := r.backend.DeletePushToken(ctx, strings.TrimSpace(fcmToken)); err != nil {
		r.l.Errorf(ctx, "push: error removing token: %v", err)
		return false
	}
	return true
}
