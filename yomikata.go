// Package yomikata resolves raw, possibly-inflected, possibly-romanized
// Japanese text fragments into dictionary entries: headword, reading, English
// glosses and pitch-accent pattern.
//
// The package is the pure lookup core: kana normalization, rule-based
// deinflection, binary-search retrieval over packed flat-text dictionary data
// and pitch-accent attachment. It never performs I/O itself; raw asset bytes
// are supplied by an injected AssetProvider.
package yomikata

import (
	"errors"

	"github.com/rs/zerolog"
)

var (
	Logger = zerolog.Nop()
	// Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	// ErrDictionaryUnavailable wraps any failure to fetch or decode the
	// dictionary assets. The lookup feature is unusable when it is returned;
	// there is no fallback data and the core never retries on its own.
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")
)
