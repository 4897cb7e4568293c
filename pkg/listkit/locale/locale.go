// Package locale translates the status strings list hosts show around a
// control, such as "3 of 10 items selected".
package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var messageFiles embed.FS

// Translator renders host strings for one language.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewBundle loads the embedded message files.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFiles.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(messageFiles, e.Name()); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", e.Name(), err)
		}
	}
	return bundle, nil
}

// New returns a translator for the first of langs the bundle supports.
// Entries may be BCP 47 tags or Accept-Language values. English is the
// fallback.
func New(langs ...string) (*Translator, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _ := language.MatchStrings(matcher, langs...)
	base, _ := tag.Base()
	return &Translator{
		localizer: i18n.NewLocalizer(bundle, langs...),
		tag:       language.Make(base.String()),
	}, nil
}

// Tag is the matched language, suitable for ItemStore.SetLocale.
func (t *Translator) Tag() language.Tag { return t.tag }

func (t *Translator) localize(id string, count int, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  count,
	})
	if err != nil {
		return id
	}
	return msg
}

// SelectionStatus renders "n of m items selected".
func (t *Translator) SelectionStatus(selected, total int) string {
	return t.localize("SelectionStatus", total, map[string]any{"Selected": selected, "Total": total})
}

// Checked renders the number of checked items.
func (t *Translator) Checked(count int) string {
	return t.localize("Checked", count, map[string]any{"Count": count})
}

// Help renders the key help footer.
func (t *Translator) Help() string { return t.localize("Help", 0, nil) }

// Empty is shown in place of a list with no items.
func (t *Translator) Empty() string { return t.localize("Empty", 0, nil) }
