package isa

import (
	"embed"
	"regexp"
	"sync"

	"github.com/picrasm/picrasm/pkg/utils"
	"gopkg.in/yaml.v3"
)

//go:embed pic18.yaml pic16.yaml
var definitions embed.FS

var definitionFiles = []string{"pic18.yaml", "pic16.yaml"}

// architectureFile is the on-disk shape of one instruction definition file.
type architectureFile struct {
	Architecture Architecture          `yaml:"architecture"`
	Locales      map[Locale][]Category `yaml:"locales"`
}

var (
	namePattern     = regexp.MustCompile(`^[a-z0-9_]+$`)
	mnemonicPattern = regexp.MustCompile(`^[A-Z0-9*+-]+$`)
)

// Load parses and validates the embedded instruction definitions. Any
// violation of the table invariants is reported as an ErrConfig error naming
// the offending entry; conflicting entries are never dropped or merged.
func Load() (*Tables, error) {
	raw := make([][]byte, 0, len(definitionFiles))

	for _, file := range definitionFiles {
		contents, err := definitions.ReadFile(file)
		if err != nil {
			return nil, utils.MakeError(ErrConfig, "reading %s: %v", file, err)
		}

		raw = append(raw, contents)
	}

	return parseTables(raw...)
}

var defaultTables = sync.OnceValues(Load)

// Default returns the process-wide instruction tables, loaded and validated
// exactly once.
func Default() (*Tables, error) {
	return defaultTables()
}

func parseTables(raw ...[]byte) (*Tables, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyTable
	}

	tables := &Tables{sets: make(map[Architecture]map[Locale]*namespace)}

	// Tracks every readable name seen so far: names must be unique across
	// all four namespaces a translation session may merge.
	owners := make(map[string]string)

	for _, contents := range raw {
		var file architectureFile

		if err := yaml.Unmarshal(contents, &file); err != nil {
			return nil, utils.MakeError(ErrConfig, "parsing definition: %v", err)
		}

		if file.Architecture != PIC16 && file.Architecture != PIC18 {
			return nil, utils.MakeError(ErrUnknownArchitecture, "%q in definition file", file.Architecture)
		}

		if _, ok := tables.sets[file.Architecture]; ok {
			return nil, utils.MakeError(ErrConfig, "architecture %s defined twice", file.Architecture)
		}

		set := make(map[Locale]*namespace, len(file.Locales))

		for locale, categories := range file.Locales {
			if locale != English && locale != Slovenian {
				return nil, utils.MakeError(ErrUnknownLocale, "%q in %s definition", locale, file.Architecture)
			}

			ns, err := buildNamespace(file.Architecture, locale, categories, owners)
			if err != nil {
				return nil, err
			}

			set[locale] = ns
		}

		for _, locale := range []Locale{English, Slovenian} {
			if _, ok := set[locale]; !ok {
				return nil, utils.MakeError(ErrEmptyTable, "%s has no %s namespace", file.Architecture, locale)
			}
		}

		tables.sets[file.Architecture] = set
	}

	for _, arch := range []Architecture{PIC16, PIC18} {
		if _, ok := tables.sets[arch]; !ok {
			return nil, utils.MakeError(ErrEmptyTable, "no definition for %s", arch)
		}
	}

	return tables, nil
}

func buildNamespace(arch Architecture, locale Locale, categories []Category, owners map[string]string) (*namespace, error) {
	ns := &namespace{
		categories: categories,
		forward:    make(map[string]string),
		reverse:    make(map[string]string),
	}

	where := string(arch) + "/" + string(locale)

	for _, category := range categories {
		if category.Title == "" {
			return nil, utils.MakeError(ErrBadEntry, "unnamed category in %s", where)
		}

		for _, entry := range category.Entries {
			if !namePattern.MatchString(entry.Name) {
				return nil, utils.MakeError(ErrBadEntry, "readable name %q in %s", entry.Name, where)
			}

			if !mnemonicPattern.MatchString(entry.Mnemonic) {
				return nil, utils.MakeError(ErrBadEntry, "mnemonic %q for %q in %s", entry.Mnemonic, entry.Name, where)
			}

			if _, ok := ns.forward[entry.Name]; ok {
				return nil, utils.MakeError(ErrDuplicateName, "%q in %s", entry.Name, where)
			}

			if _, ok := ns.reverse[entry.Mnemonic]; ok {
				return nil, utils.MakeError(ErrDuplicateMnemonic, "%q in %s", entry.Mnemonic, where)
			}

			if owner, ok := owners[entry.Name]; ok {
				return nil, utils.MakeError(ErrNameCollision, "%q defined in both %s and %s", entry.Name, owner, where)
			}

			ns.forward[entry.Name] = entry.Mnemonic
			ns.reverse[entry.Mnemonic] = entry.Name
			owners[entry.Name] = where
		}
	}

	if len(ns.forward) == 0 {
		return nil, utils.MakeError(ErrEmptyTable, "%s defines no instructions", where)
	}

	return ns, nil
}
