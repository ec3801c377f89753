package questionnaire

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLocale is used when a session does not ask for a specific language.
const DefaultLocale = "en"

type questionText struct {
	Prompt string   `yaml:"prompt"`
	Labels []string `yaml:"labels,omitempty"`
}

// TextTable resolves display text for one locale, keyed by question id. The
// graph itself is locale-independent; only prompts and option labels differ.
type TextTable struct {
	locale string
	texts  map[string]questionText
}

// LoadTextTable parses the embedded locale file for the given locale code.
func LoadTextTable(locale string) (*TextTable, error) {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		locale = DefaultLocale
	}

	data, err := localeFS.ReadFile("locales/" + locale + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q", locale)
	}

	var parsed struct {
		Questions map[string]questionText `yaml:"questions"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	return &TextTable{locale: locale, texts: parsed.Questions}, nil
}

// Locales lists the locale codes with an embedded text table.
func Locales() []string {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil
	}
	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") {
			locales = append(locales, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(locales)
	return locales
}

func (t *TextTable) Locale() string {
	return t.locale
}

// Prompt returns the localized prompt, falling back to the question id when
// the table has no entry.
func (t *TextTable) Prompt(id string) string {
	if text, ok := t.texts[id]; ok && text.Prompt != "" {
		return text.Prompt
	}
	return id
}

// Labels returns localized display labels for the given canonical options.
// When the table entry is missing or misaligned, the canonical values are the
// fallback.
func (t *TextTable) Labels(id string, options []string) []string {
	if text, ok := t.texts[id]; ok && len(text.Labels) == len(options) {
		return text.Labels
	}
	return options
}

// Missing reports the question ids the table has no prompt for; used by tests
// to keep the locale files complete.
func (t *TextTable) Missing(g *Graph) []string {
	var missing []string
	for _, q := range g.Questions() {
		if text, ok := t.texts[q.ID]; !ok || text.Prompt == "" {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
