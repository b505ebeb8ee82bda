// Package cli provides the command-line interface of glyphset.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/modernice/glyphset"
	"github.com/modernice/glyphset/scan"
	"golang.org/x/exp/slog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

type CLI struct {
	Scan struct {
		Root        string   `arg:"" default:"public" help:"Root directory to scan."`
		Ext         []string `name:"ext" short:"x" env:"GLYPHSET_EXT" help:"File extension(s) to scan. Defaults to .html, .xml and .svg."`
		Include     []string `name:"include" short:"i" env:"GLYPHSET_INCLUDE" help:"Glob pattern(s) to include files."`
		Exclude     []string `name:"exclude" short:"e" env:"GLYPHSET_EXCLUDE" help:"Glob pattern(s) to exclude files."`
		Charset     string   `default:"utf-8" env:"GLYPHSET_CHARSET" help:"Character encoding of the scanned files."`
		SkipInvalid bool     `name:"skip-invalid" env:"GLYPHSET_SKIP_INVALID" help:"Skip files that cannot be decoded instead of failing."`
		Sorted      bool     `name:"sorted" env:"GLYPHSET_SORTED" help:"Sort the collected characters by code point."`
	} `cmd:"" default:"withargs" help:"Print the characters used by the files under the root directory."`

	Verbose bool `name:"verbose" short:"v" env:"GLYPHSET_VERBOSE" help:"Enable verbose logging."`
}

// Run scans the root directory for non-ASCII characters and prints the
// character inventory to stdout. It is invoked by kong after parsing the
// command-line arguments.
func (cfg *CLI) Run(kctx *kong.Context) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logHandler := slog.HandlerOptions{Level: level}.NewTextHandler(os.Stderr)

	enc, err := parseCharset(cfg.Scan.Charset)
	if err != nil {
		return err
	}

	scanOpts := []scan.Option{
		scan.Extensions(cfg.Scan.Ext...),
		scan.Include(cfg.Scan.Include...),
		scan.Exclude(cfg.Scan.Exclude...),
		scan.SkipInvalid(cfg.Scan.SkipInvalid),
	}
	if enc != nil {
		scanOpts = append(scanOpts, scan.Encoding(enc))
	}

	inv := glyphset.New(
		glyphset.WithLogger(logHandler),
		glyphset.ScanWith(scanOpts...),
		glyphset.Sorted(cfg.Scan.Sorted),
	)

	out, err := inv.Run(ctx, cfg.Scan.Root)
	if err != nil {
		return fmt.Errorf("build character inventory: %w", err)
	}

	fmt.Fprintln(kctx.Stdout, out)

	return nil
}

// parseCharset resolves a charset name to its encoding. The default "utf-8"
// resolves to nil, which makes the Scanner use its strict UTF-8 decoding.
func parseCharset(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}

	return enc, nil
}

// New creates the *kong.Context for the "glyphset" CLI tool.
func New() *kong.Context {
	var cfg CLI
	return kong.Parse(&cfg)
}
