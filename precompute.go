package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bent101/go-prime-sieve/sieve"
	"github.com/schollz/progressbar/v3"
)

// showInitPrimes precomputes a sieve up to the configured capacity and writes
// its bitmap and statistics to w.
func showInitPrimes(w io.Writer, l *slog.Logger, conf *config) (err error) {
	bar := newProgressBar(conf, conf.Capacity, "classifying")
	start := time.Now()

	s := sieve.NewWithCapacity(
		conf.Capacity,
		sieve.WithLogger(l),
		sieve.WithProgress(func(cursor int) {
			_ = bar.Set(min(cursor, conf.Capacity))
		}),
	)

	_ = bar.Finish()
	l.Debug("precomputed", "capacity", conf.Capacity, "elapsed", time.Since(start))

	var b strings.Builder
	fmt.Fprintf(&b, "=== PRECOMPUTING PRIMES UP TO %d ===\n", conf.Capacity)
	writeBitmap(&b, s)
	writeStats(&b, s)

	_, err = io.WriteString(w, b.String())

	return err
}

// writeBitmap writes the rendered bitmap of s under a header, one tab-indented
// line per word.
func writeBitmap(b *strings.Builder, s *sieve.Sieve) {
	b.WriteString("Bitmap of odd primes (starting at 3):\n")
	for _, line := range strings.SplitAfter(s.Render(), "\n") {
		if line != "" {
			b.WriteString("\t" + line)
		}
	}
	b.WriteString("\n")
}

// writeStats writes the size of the classified range of s and the memory it
// takes.
func writeStats(b *strings.Builder, s *sieve.Sieve) {
	fmt.Fprintln(b, "=== STATISTICS ===")
	fmt.Fprintf(b, "  Classified up to: %d\n", s.Cursor())
	fmt.Fprintf(b, "  Primes found:     %d\n", s.Count())
	fmt.Fprintf(b, "  Bitmap size:      %d words (%d bytes)\n", s.Words(), s.Words()*sieve.WordBits/8)
	b.WriteString("\n")
}

// newProgressBar returns a progress bar for total steps.  It writes to stderr
// if progress is enabled in conf and is silent otherwise.  A total below one
// makes a spinner.
func newProgressBar(conf *config, total int, desc string) (bar *progressbar.ProgressBar) {
	var w io.Writer = io.Discard
	if conf.Progress {
		w = os.Stderr
	}

	if total < 1 {
		total = -1
	}

	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
