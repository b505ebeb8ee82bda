package internal

import (
	"context"

	"golang.org/x/exp/slog"
)

var nop slog.Handler = nopHandler{}

// NopLogger returns a logger that discards all log records. It is used as the
// default logger wherever no slog.Handler was configured.
func NopLogger() *slog.Logger {
	return slog.New(nop)
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (nopHandler) Handle(context.Context, slog.Record) error { return nil }

func (nopHandler) WithAttrs([]slog.Attr) slog.Handler { return nop }

func (nopHandler) WithGroup(string) slog.Handler { return nop }
