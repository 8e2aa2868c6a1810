// Package app wires the per-process collaborators every command shares:
// one API client, one logger and one pair of terminal dialogs.
package app

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/soley/admin-cli/internal/api"
	"github.com/soley/admin-cli/internal/config"
	"github.com/soley/admin-cli/internal/dialog"
	"github.com/soley/admin-cli/internal/section"
	"github.com/soley/admin-cli/pkg/log"
)

// App is built once in the root command and passed down through the context.
type App struct {
	Config    *config.Config
	Client    *api.Client
	Logger    log.Logger
	Dialogs   *dialog.Manager
	Confirmer dialog.Confirmer
	In        *bufio.Reader
	Out       io.Writer
	Colors    bool
}

// Options are the root command flags that shape the App.
type Options struct {
	Debug     bool
	AssumeYes bool
	Language  string
	In        io.Reader
	Out       io.Writer
	// Err receives dialogs and prompts so Out stays machine readable.
	Err io.Writer
}

// New builds the App from the loaded configuration.
func New(cfg *config.Config, opts Options) (*App, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	colors := cfg.Format.Colors && !color.NoColor
	if !colors {
		color.NoColor = true
	}

	level := cfg.Logger.Level
	if opts.Debug {
		level = "debug"
	}
	l, err := log.NewZapLogger(log.ZapConfig{Level: level, Encoding: cfg.Logger.Encoding, Color: colors})
	if err != nil {
		return nil, err
	}

	deviceID, err := config.EnsureDeviceID()
	if err != nil {
		l.Warnf(context.Background(), "could not persist device id: %v", err)
	}

	lang := cfg.Session.Language
	if opts.Language != "" {
		lang = opts.Language
	}

	client := api.NewClient(api.Options{
		BaseURL:   cfg.Server.URL,
		UploadURL: cfg.Server.UploadURL,
		Token:     cfg.Session.AuthToken,
		Language:  lang,
		DeviceID:  deviceID,
		Timeout:   cfg.Timeout(),
	}, l)

	in := bufio.NewReader(opts.In)
	dialogs := dialog.NewTerminal(in, opts.Err, colors)

	var confirmer dialog.Confirmer = dialogs
	if opts.AssumeYes {
		confirmer = dialog.Always(true)
	}

	return &App{
		Config:    cfg,
		Client:    client,
		Logger:    l,
		Dialogs:   dialogs,
		Confirmer: confirmer,
		In:        in,
		Out:       opts.Out,
		Colors:    colors,
	}, nil
}

// Deps returns what resource sections need.
func (a *App) Deps() section.Deps {
	return section.Deps{
		Client:    a.Client,
		Confirmer: a.Confirmer,
		Notifier:  a.Dialogs,
		Logger:    a.Logger,
		PageSize:  a.Config.PageSize(),
		Debounce:  a.Config.DebounceWindow(),
		Colors:    a.Colors,
	}
}

// RequireLogin fails when no session token is stored.
func (a *App) RequireLogin() error {
	if !a.Client.IsAuthenticated() {
		return ErrNotLoggedIn
	}
	return nil
}

// ErrorShown reports whether the last error was already presented in a dialog.
func (a *App) ErrorShown() bool {
	n := a.Dialogs.Notification()
	return n.Open && n.Kind == dialog.KindError
}

// ErrNotLoggedIn is returned by commands that need a session.
var ErrNotLoggedIn = errors.New("not logged in, run 'soley auth login' first")

type ctxKey struct{}

// WithContext stores a in ctx.
func WithContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext returns the App stored by WithContext, or nil.
func FromContext(ctx context.Context) *App {
	a, _ := ctx.Value(ctxKey{}).(*App)
	return a
}
