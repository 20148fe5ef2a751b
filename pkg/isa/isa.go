package isa

import (
	"errors"

	"github.com/picrasm/picrasm/pkg/utils"
)

var (
	ErrConfig              = errors.New("invalid instruction table")
	ErrEmptyTable          = utils.MakeError(ErrConfig, "empty instruction table")
	ErrBadEntry            = utils.MakeError(ErrConfig, "malformed instruction entry")
	ErrDuplicateName       = utils.MakeError(ErrConfig, "duplicate readable name")
	ErrDuplicateMnemonic   = utils.MakeError(ErrConfig, "duplicate standard mnemonic")
	ErrNameCollision       = utils.MakeError(ErrConfig, "readable name collision between namespaces")
	ErrUnknownArchitecture = errors.New("unknown architecture")
	ErrUnknownLocale       = errors.New("unknown locale")
)

// Architecture selects which instruction set family a translation uses.
type Architecture string

const (
	PIC16           Architecture = "pic16"
	PIC18           Architecture = "pic18"
	AnyArchitecture Architecture = "any"
)

// ParseArchitecture parses a CLI/config architecture name.
func ParseArchitecture(name string) (Architecture, error) {
	switch Architecture(name) {
	case PIC16, PIC18, AnyArchitecture:
		return Architecture(name), nil
	}

	return "", utils.MakeError(ErrUnknownArchitecture, "%q (expected pic16, pic18 or any)", name)
}

// Locale selects the human language of the readable instruction names.
type Locale string

const (
	English   Locale = "en"
	Slovenian Locale = "si"

	// AnyLocale merges English and Slovenian names. Only valid for forward
	// translation; the reverse map is strictly per locale.
	AnyLocale Locale = "any"
)

// ParseLocale parses a CLI/config locale name.
func ParseLocale(name string) (Locale, error) {
	switch name {
	case string(English), string(Slovenian):
		return Locale(name), nil
	case string(AnyLocale), "all":
		return AnyLocale, nil
	}

	return "", utils.MakeError(ErrUnknownLocale, "%q (expected en, si or all)", name)
}

// Entry maps one readable instruction name to its standard Microchip mnemonic.
type Entry struct {
	Name     string `yaml:"name"`
	Mnemonic string `yaml:"mnemonic"`
}

// Category is an ordered group of entries, used for reference listings only.
// Lookup behavior never depends on category or entry order.
type Category struct {
	Title   string  `yaml:"title"`
	Entries []Entry `yaml:"instructions"`
}

// namespace holds one (architecture, locale) instruction map with both
// lookup directions prebuilt. Within a namespace the map is a bijection.
type namespace struct {
	categories []Category
	forward    map[string]string // readable name -> mnemonic
	reverse    map[string]string // mnemonic -> readable name
}

// Tables is the full immutable instruction definition, loaded once at startup
// and shared read-only by all translator sessions.
type Tables struct {
	sets map[Architecture]map[Locale]*namespace
}

// Architectures returns the defined architectures, full set first. The PIC16
// namespace only lists names that PIC18 does not already define, so merges
// always start from PIC18.
func (t *Tables) Architectures() []Architecture {
	return []Architecture{PIC18, PIC16}
}

// Locales returns the defined locales in presentation order.
func (t *Tables) Locales() []Locale {
	return []Locale{English, Slovenian}
}

// Categories returns the ordered reference categories of one namespace.
func (t *Tables) Categories(arch Architecture, locale Locale) []Category {
	set, ok := t.sets[arch]
	if !ok {
		return nil
	}

	ns, ok := set[locale]
	if !ok {
		return nil
	}

	return ns.categories
}

// EntryCount returns the total number of entries across all namespaces.
func (t *Tables) EntryCount() int {
	total := 0

	for _, set := range t.sets {
		for _, ns := range set {
			total += len(ns.forward)
		}
	}

	return total
}

func (t *Tables) namespaces(locale Locale, arch Architecture) []*namespace {
	var selected []*namespace

	for _, a := range t.Architectures() {
		if arch != AnyArchitecture && arch != a {
			continue
		}

		for _, l := range t.Locales() {
			if locale != AnyLocale && locale != l {
				continue
			}

			if ns, ok := t.sets[a][l]; ok {
				selected = append(selected, ns)
			}
		}
	}

	return selected
}

// Forward returns the merged readable name -> mnemonic map for the requested
// locale and architecture selection. Two merged namespaces defining the same
// readable name with different mnemonics is a data-integrity defect.
func (t *Tables) Forward(locale Locale, arch Architecture) (map[string]string, error) {
	selected := t.namespaces(locale, arch)
	if len(selected) == 0 {
		return nil, utils.MakeError(ErrEmptyTable, "no namespace matches locale %q, architecture %q", locale, arch)
	}

	merged := make(map[string]string)

	for _, ns := range selected {
		for name, mnemonic := range ns.forward {
			if existing, ok := merged[name]; ok && existing != mnemonic {
				return nil, utils.MakeError(ErrNameCollision, "%q maps to both %q and %q", name, existing, mnemonic)
			}

			merged[name] = mnemonic
		}
	}

	return merged, nil
}

// Reverse returns the mnemonic -> readable name map for one locale, merged
// over both architectures. Mnemonics shared between architectures resolve to
// the PIC16 entry, matching the merge order of the forward tool this table
// format originates from.
func (t *Tables) Reverse(locale Locale) (map[string]string, error) {
	if locale != English && locale != Slovenian {
		return nil, utils.MakeError(ErrUnknownLocale, "%q (reverse translation needs en or si)", locale)
	}

	merged := make(map[string]string)

	for _, arch := range t.Architectures() {
		ns, ok := t.sets[arch][locale]
		if !ok {
			return nil, utils.MakeError(ErrEmptyTable, "no %s namespace for architecture %s", locale, arch)
		}

		for mnemonic, name := range ns.reverse {
			merged[mnemonic] = name
		}
	}

	return merged, nil
}
