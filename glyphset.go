// Package glyphset extracts the set of characters used by a static site so
// that a font can be subset to exactly the glyphs the site needs.
package glyphset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/modernice/glyphset/charset"
	"github.com/modernice/glyphset/internal"
	"github.com/modernice/glyphset/scan"
	"golang.org/x/exp/slog"
)

// Inventory scans a directory tree for non-ASCII characters and builds the
// character inventory string for it. Use New to create an Inventory, Scan to
// collect the non-ASCII characters under a root directory, and Run to get the
// final inventory string (the ASCII preamble followed by the collected
// characters).
type Inventory struct {
	scanOpts []scan.Option
	sorted   bool
	log      *slog.Logger
}

// Option is a functional option for an Inventory.
type Option func(*Inventory)

// WithLogger returns an Option that sets the logger for an Inventory. The
// logger is also passed to the Scanner that the Inventory creates.
func WithLogger(h slog.Handler) Option {
	return func(inv *Inventory) {
		inv.log = slog.New(h)
	}
}

// ScanWith returns an Option that passes the given scan.Options to the
// Scanner that the Inventory creates.
func ScanWith(opts ...scan.Option) Option {
	return func(inv *Inventory) {
		inv.scanOpts = append(inv.scanOpts, opts...)
	}
}

// Sorted returns an Option that configures whether the collected characters
// are sorted by code point before they are appended to the ASCII preamble.
// Sorting makes the output deterministic across runs.
func Sorted(sorted bool) Option {
	return func(inv *Inventory) {
		inv.sorted = sorted
	}
}

// New returns a new *Inventory, configured by opts.
func New(opts ...Option) *Inventory {
	var inv Inventory
	for _, opt := range opts {
		opt(&inv)
	}
	if inv.log == nil {
		inv.log = internal.NopLogger()
	}
	return &inv
}

// Scan collects the non-ASCII characters of the markup files under the root
// directory. A root that does not exist is not an error; it simply yields an
// empty set.
func (inv *Inventory) Scan(ctx context.Context, root string) (scan.Runes, error) {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		inv.log.Debug("Root directory does not exist.", "root", root)
		return make(scan.Runes), nil
	}

	opts := append([]scan.Option{scan.WithLogger(inv.log.Handler())}, inv.scanOpts...)
	s := scan.New(opts...)

	runes, err := s.Scan(ctx, os.DirFS(root))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return runes, nil
}

// Run scans the root directory and returns the character inventory: the ASCII
// preamble followed by every collected non-ASCII character exactly once.
func (inv *Inventory) Run(ctx context.Context, root string) (string, error) {
	runes, err := inv.Scan(ctx, root)
	if err != nil {
		return "", err
	}

	var opts []charset.Option
	if inv.sorted {
		opts = append(opts, charset.Sorted())
	}

	return charset.Build(runes, opts...), nil
}
