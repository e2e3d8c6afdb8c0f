package sieve

import (
	"log/slog"

	"github.com/AdguardTeam/golibs/logutil/slogutil"
)

type options struct {
	logger   *slog.Logger
	progress func(cursor int)
}

func defaultOptions() options {
	return options{
		logger: slogutil.NewDiscardLogger(),
	}
}

// Option configures a Sieve at construction.
type Option func(*options)

// WithLogger sets the logger used for debug messages about bitmap growth.
// If nil is passed, log output is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slogutil.NewDiscardLogger()
		}
		o.logger = l
	}
}

// WithProgress sets a function that is called with the new cursor after
// every classified integer.  It must not call back into the sieve.
func WithProgress(fn func(cursor int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}
