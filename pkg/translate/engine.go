// Package translate implements the bidirectional translation between
// readable PIC16/PIC18 assembly (English or Slovenian verb-phrase mnemonics)
// and standard Microchip assembly.
//
// Both directions are line oriented: line count and order are preserved
// exactly, comments, labels, directives and operands pass through verbatim,
// and unrecognized tokens are never an error. The reverse direction
// additionally rewrites the move-class instructions MOVLW/MOVWF/MOVFF into
// assignment syntax; the forward direction deliberately does not parse that
// syntax back, so the sugar is a one-way convenience.
package translate

import (
	"sync"

	"github.com/picrasm/picrasm/pkg/isa"
)

// Engine translates between readable and standard assembly using one
// immutable instruction table set. Compiled matchers are built lazily per
// (locale, architecture) selection and cached for the life of the engine;
// translation calls are stateless and safe to run concurrently.
type Engine struct {
	tables *isa.Tables

	mu       sync.Mutex
	matchers map[matcherKey]*Matcher
}

type matcherKey struct {
	locale  isa.Locale
	arch    isa.Architecture
	reverse bool
}

// NewEngine creates a translation engine over the given tables.
func NewEngine(tables *isa.Tables) *Engine {
	return &Engine{
		tables:   tables,
		matchers: make(map[matcherKey]*Matcher),
	}
}

var defaultEngine = sync.OnceValues(func() (*Engine, error) {
	tables, err := isa.Default()
	if err != nil {
		return nil, err
	}

	return NewEngine(tables), nil
})

// Default returns a process-wide engine over the embedded instruction tables.
func Default() (*Engine, error) {
	return defaultEngine()
}

// Tables returns the instruction tables the engine translates with.
func (e *Engine) Tables() *isa.Tables {
	return e.tables
}

func (e *Engine) matcherFor(key matcherKey) (*Matcher, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if matcher, ok := e.matchers[key]; ok {
		return matcher, nil
	}

	var mapping map[string]string
	var err error

	if key.reverse {
		mapping, err = e.tables.Reverse(key.locale)
	} else {
		mapping, err = e.tables.Forward(key.locale, key.arch)
	}

	if err != nil {
		return nil, err
	}

	matcher := NewMatcher(mapping)
	e.matchers[key] = matcher

	return matcher, nil
}
