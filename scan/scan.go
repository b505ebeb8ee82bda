// Package scan walks a file system and collects the distinct non-ASCII
// characters that appear in markup files.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/modernice/glyphset/internal"
	"github.com/modernice/glyphset/internal/slice"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultExtensions are the file extensions that are scanned if no Extensions
// option is provided. Matching is exact, so ".HTML" is not scanned by default.
var DefaultExtensions = []string{".html", ".xml", ".svg"}

// Scanner walks a file system, decodes every file that matches its configured
// extensions and collects all characters with a code point of 128 or higher
// into a Runes set. Use New to create a Scanner, and Scan to run it over an
// fs.FS. By default, files must be valid UTF-8; a file that cannot be decoded
// aborts the entire scan with a *DecodeError. Use SkipInvalid to skip such
// files instead, or Encoding to decode files using a different character
// encoding.
type Scanner struct {
	exts        []string
	include     []string
	exclude     []string
	enc         encoding.Encoding
	skipInvalid bool
	log         *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// Extensions sets the file extensions that a Scanner considers candidates for
// scanning. An extension must include the leading dot and is matched
// case-sensitively against the file name's suffix. If no extensions are
// provided, DefaultExtensions is used.
func Extensions(exts ...string) Option {
	exts = slice.Map(exts, strings.TrimSpace)
	exts = slice.NoZero(exts)
	return func(s *Scanner) {
		s.exts = append(s.exts, exts...)
	}
}

// Include adds glob pattern(s) to the Scanner. If at least one pattern is
// provided, only candidate files that match one of the patterns are scanned.
// Patterns support doublestar ("**") syntax.
func Include(patterns ...string) Option {
	patterns = slice.Map(patterns, strings.TrimSpace)
	patterns = slice.NoZero(patterns)
	return func(s *Scanner) {
		s.include = append(s.include, patterns...)
	}
}

// Exclude adds glob pattern(s) to the Scanner. Candidate files that match one
// of the patterns are not scanned. Patterns support doublestar ("**") syntax.
func Exclude(patterns ...string) Option {
	patterns = slice.Map(patterns, strings.TrimSpace)
	patterns = slice.NoZero(patterns)
	return func(s *Scanner) {
		s.exclude = append(s.exclude, patterns...)
	}
}

// Encoding sets the character encoding that is used to decode scanned files.
// If not set, files are read as UTF-8 and any invalid byte sequence fails the
// scan with a *DecodeError. With a configured encoding, a file whose decoded
// text contains the Unicode replacement character (U+FFFD) fails the scan the
// same way, since decoders substitute it for bytes they cannot decode. A file
// that legitimately encodes U+FFFD is rejected too; use SkipInvalid to skip
// such files instead.
func Encoding(enc encoding.Encoding) Option {
	return func(s *Scanner) {
		s.enc = enc
	}
}

// SkipInvalid configures whether files that cannot be decoded are skipped.
// The default is false: a single undecodable file fails the whole scan.
func SkipInvalid(skip bool) Option {
	return func(s *Scanner) {
		s.skipInvalid = skip
	}
}

// WithLogger returns an Option that sets the logger for a Scanner. The logger
// is used to log per-file decisions while scanning.
func WithLogger(h slog.Handler) Option {
	return func(s *Scanner) {
		s.log = slog.New(h)
	}
}

// New creates a new Scanner with the given Option(s).
func New(opts ...Option) *Scanner {
	var s Scanner
	for _, opt := range opts {
		opt(&s)
	}
	if len(s.exts) == 0 {
		s.exts = DefaultExtensions
	}
	s.exts = slice.Unique(s.exts)
	if s.log == nil {
		s.log = internal.NopLogger()
	}
	return &s
}

// Scan walks fsys and returns the set of characters with a code point of 128
// or higher that appear in the files matching the Scanner's extensions and
// glob patterns. Directories are traversed but never matched. Scan returns the
// first error it encounters; if a file cannot be decoded, the returned error
// wraps a *DecodeError unless the Scanner is configured with SkipInvalid.
func (s *Scanner) Scan(ctx context.Context, fsys fs.FS) (Runes, error) {
	s.log.Info("Scanning for non-ASCII characters ...", "extensions", s.exts)

	runes := make(Runes)

	if err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !slices.Contains(s.exts, path.Ext(p)) {
			s.log.Debug("Skipping file", "path", p, "reason", "extension")
			return nil
		}

		if len(s.include) > 0 {
			ok, err := matchAny(s.include, p)
			if err != nil {
				return err
			}
			if !ok {
				s.log.Debug("Skipping file", "path", p, "reason", "not included")
				return nil
			}
		}

		if ok, err := matchAny(s.exclude, p); err != nil {
			return err
		} else if ok {
			s.log.Debug("Skipping file", "path", p, "reason", "excluded")
			return nil
		}

		if err := s.scanFile(fsys, p, runes); err != nil {
			var decodeErr *DecodeError
			if s.skipInvalid && errors.As(err, &decodeErr) {
				s.log.Warn("Skipping file that cannot be decoded", "path", p, "error", decodeErr.Err)
				return nil
			}
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}

	s.log.Info("Scan finished.", "characters", runes.Len())

	return runes, nil
}

func (s *Scanner) scanFile(fsys fs.FS, p string, runes Runes) error {
	s.log.Debug("Scanning file ...", "path", p)

	f, err := fsys.Open(p)
	if err != nil {
		return fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	text, err := s.decode(f)
	if err != nil {
		return &DecodeError{Path: p, Err: err}
	}

	for _, r := range text {
		if r >= 128 {
			runes.Add(r)
		}
	}

	return nil
}

var errUndecodableBytes = errors.New("undecodable bytes replaced with U+FFFD")

func (s *Scanner) decode(r io.Reader) (string, error) {
	if s.enc == nil {
		b, err := io.ReadAll(transform.NewReader(r, encoding.UTF8Validator))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	b, err := io.ReadAll(transform.NewReader(r, s.enc.NewDecoder()))
	if err != nil {
		return "", err
	}

	// Decoders never fail; they substitute U+FFFD for bytes they cannot
	// decode. A replacement character in the output would be a character that
	// appears in no scanned file, so treat it as a decode failure.
	text := string(b)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", errUndecodableBytes
	}

	return text, nil
}

func matchAny(patterns []string, p string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, p)
		if err != nil {
			return false, fmt.Errorf("match %q against %q: %w", p, pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// DecodeError is returned by a Scanner when a candidate file cannot be decoded
// using the configured character encoding.
type DecodeError struct {
	Path string
	Err  error
}

// Error returns the error message of the DecodeError.
func (err *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", err.Path, err.Err)
}

// Unwrap returns the underlying error of the DecodeError.
func (err *DecodeError) Unwrap() error {
	return err.Err
}
