package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/AdguardTeam/golibs/errors"
	"github.com/AdguardTeam/golibs/logutil/slogutil"
	"github.com/bent101/go-prime-sieve/sieve"
)

func main() {
	conf, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)

		os.Exit(2)
	}

	l := newLogger(conf)

	err = run(os.Stdout, l, conf)
	if err != nil {
		l.Error("running demo", slogutil.KeyError, err)

		os.Exit(1)
	}
}

// newLogger returns a logger writing to stderr at the level set in conf.
func newLogger(conf *config) (l *slog.Logger) {
	lvl := slog.LevelInfo
	if conf.Verbose {
		lvl = slog.LevelDebug
	}

	return slogutil.New(&slogutil.Config{
		Output:       os.Stderr,
		Format:       slogutil.FormatDefault,
		Level:        lvl,
		AddTimestamp: true,
	})
}

// run shows both ways of filling a sieve: precomputing up to a bound and
// drawing primes one by one.
func run(w io.Writer, l *slog.Logger, conf *config) (err error) {
	l.Info("starting demo", "capacity", conf.Capacity, "count", conf.Count)

	err = showInitPrimes(w, l, conf)
	if err != nil {
		return fmt.Errorf("precomputing: %w", err)
	}

	err = showNextPrime(w, l, conf)
	if err != nil {
		return fmt.Errorf("drawing primes: %w", err)
	}

	return nil
}

// showNextPrime draws the configured number of primes from an empty sieve
// and writes them to w along with the bitmap before and after.
func showNextPrime(w io.Writer, l *slog.Logger, conf *config) (err error) {
	s := sieve.New(sieve.WithLogger(l))

	var b strings.Builder
	fmt.Fprintf(&b, "=== DRAWING THE FIRST %d PRIMES ===\n", conf.Count)
	writeBitmap(&b, s)

	bar := newProgressBar(conf, conf.Count, "drawing")

	fmt.Fprintf(&b, "The first %d primes:\n", conf.Count)
	for i := range conf.Count {
		fmt.Fprintf(&b, "\tPrime #%d: %d\n", i+1, s.NextPrime())
		_ = bar.Add(1)
	}
	b.WriteString("\n")

	_ = bar.Finish()

	writeBitmap(&b, s)
	l.Debug("drew primes", "count", conf.Count, "cursor", s.Cursor(), "words", s.Words())

	_, err = io.WriteString(w, b.String())

	return err
}
