// ABOUTME: Embedded multilingual keyword dictionaries mapping phrases to canonical intents
// ABOUTME: Parsed once at init from dictionaries/*.yaml; immutable for the process lifetime

package intent

import (
	"embed"
	"fmt"
	"slices"

	"github.com/mauromedda/pi-intent/internal/textnorm"
	"gopkg.in/yaml.v3"
)

//go:embed dictionaries/*.yaml
var dictionaryFS embed.FS

// Languages lists the known language codes in the order MatchKeywords scans them.
var Languages = []string{"en", "ko", "ja", "zh", "es"}

// IntentKeywords is one canonical intent and its ordered surface phrases.
type IntentKeywords struct {
	Intent   string   `yaml:"intent"`
	Keywords []string `yaml:"keywords"`
}

// languageFile is the on-disk shape of a dictionary file.
type languageFile struct {
	Language string           `yaml:"language"`
	Intents  []IntentKeywords `yaml:"intents"`
}

// Dictionary maps a language code to its intents in declared order.
type Dictionary map[string][]IntentKeywords

var (
	dictionary = mustLoadDictionary()
	known      = collectKnown(dictionary)
)

func mustLoadDictionary() Dictionary {
	d, err := loadDictionary()
	if err != nil {
		// Embedded data is compiled in; a parse failure is a build defect.
		panic(fmt.Sprintf("intent dictionaries: %v", err))
	}
	return d
}

func loadDictionary() (Dictionary, error) {
	d := make(Dictionary, len(Languages))
	for _, lang := range Languages {
		data, err := dictionaryFS.ReadFile("dictionaries/" + lang + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", lang, err)
		}
		var f languageFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", lang, err)
		}
		if f.Language != lang {
			return nil, fmt.Errorf("file %s.yaml declares language %q", lang, f.Language)
		}
		for i := range f.Intents {
			if !IsCanonical(f.Intents[i].Intent) {
				return nil, fmt.Errorf("%s: malformed intent %q", lang, f.Intents[i].Intent)
			}
			for j, kw := range f.Intents[i].Keywords {
				f.Intents[i].Keywords[j] = textnorm.Fold(kw)
			}
		}
		d[lang] = f.Intents
	}
	return d, nil
}

func collectKnown(d Dictionary) []string {
	var out []string
	for _, lang := range Languages {
		for _, ik := range d[lang] {
			if !slices.Contains(out, ik.Intent) {
				out = append(out, ik.Intent)
			}
		}
	}
	return out
}

// KnownIntents returns every canonical intent in the dictionaries, in declared order.
func KnownIntents() []string {
	return slices.Clone(known)
}

// HasLanguage reports whether a dictionary exists for the language code.
func HasLanguage(code string) bool {
	_, ok := dictionary[code]
	return ok
}

// Keywords returns a copy of the ordered intent phrases for a language.
// Unknown languages yield nil.
func Keywords(lang string) []IntentKeywords {
	src := dictionary[lang]
	if src == nil {
		return nil
	}
	out := make([]IntentKeywords, len(src))
	for i, ik := range src {
		out[i] = IntentKeywords{Intent: ik.Intent, Keywords: slices.Clone(ik.Keywords)}
	}
	return out
}
