package push

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/soley/admin-cli/internal/api"
	"github.com/soley/admin-cli/pkg/log"
)

type fakeBackend struct {
	registered []api.PushToken
	deleted    []string
	err        error
}

func (f *fakeBackend) RegisterPushToken(_ context.Context, t api.PushToken) error {
	f.registered = append(f.registered, t)
	return f.err
}

func (f *fakeBackend) DeletePushToken(_ context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.err
}

func observed() (log.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return log.NewFromZap(zap.New(core)), logs
}

func TestRegisterSendsDeviceMetadata(t *testing.T) {
	b := &fakeBackend{}
	r := NewRegistrar(b, nil)
	r.now = func() time.Time { return time.UnixMilli(1712345678901) }

	if !r.Register(context.Background(), " tok-1 ") {
		t.Fatal("Register returned false")
	}
	want := api.PushToken{FCMToken: "tok-1", DeviceID: "admin-web-1712345678901", Platform: "web", DeviceType: "admin-dashboard"}
	if len(b.registered) != 1 || b.registered[0] != want {
		t.Errorf("registered = %+v", b.registered)
	}
}

func TestRegisterFailureIsLoggedOnly(t *testing.T) {
	l, logs := observed()
	r := NewRegistrar(&fakeBackend{err: errors.New("boom")}, l)

	<-r.Go(context.Background(), "tok")

	if logs.FilterLevelExact(zapcore.ErrorLevel).Len() != 1 {
		t.Errorf("error logs = %d", logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	}
}

func TestRegisterSkipsEmptyToken(t *testing.T) {
	b := &fakeBackend{}
	if NewRegistrar(b, nil).Register(context.Background(), "  ") {
		t.Error("expected false")
	}
	if len(b.registered) != 0 {
		t.Error("backend was called")
	}
}

func TestUnregister(t *testing.T) {
	b := &fakeBackend{}
	if !NewRegistrar(b, nil).Unregister(context.Background(), "tok") || b.deleted[0] != "tok" {
		t.Errorf("deleted = %v", b.deleted)
	}
}
