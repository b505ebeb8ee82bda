// Package charset builds the character inventory string that is fed to the
// font subsetter.
package charset

import (
	"github.com/modernice/glyphset/scan"
)

// ASCII is the fixed preamble that every inventory starts with: the digits,
// the lowercase and uppercase letters, the ASCII punctuation and a single
// space. It covers all 95 printable ASCII characters and is always part of
// the output, whether or not the scanned files use them.
const ASCII = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ "

// Option configures Build.
type Option func(*builder)

type builder struct {
	sorted bool
}

// Sorted returns an Option that makes Build append the collected characters
// in code point order instead of the set's unspecified iteration order, making
// the output deterministic across runs.
func Sorted() Option {
	return func(b *builder) {
		b.sorted = true
	}
}

// Build returns the character inventory for the given set of non-ASCII runes:
// the ASCII preamble followed by each rune of the set exactly once. The order
// of the appended runes is unspecified unless the Sorted option is provided.
func Build(runes scan.Runes, opts ...Option) string {
	var cfg builder
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.sorted {
		return ASCII + string(runes.Sorted())
	}
	return ASCII + string(runes.Slice())
}
