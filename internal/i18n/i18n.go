// Package i18n localizes interface text into English and Russian.
package i18n

import (
	"log/slog"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Translator renders message IDs in one language.
type Translator struct {
	localizer *goi18n.Localizer
	lang      string
}

var bundle = newBundle()

func newBundle() *goi18n.Bundle {
	b := goi18n.NewBundle(language.English)
	// The message tables are static; a failure here is a programming error.
	if err := b.AddMessages(language.English, english...); err != nil {
		panic(err)
	}
	if err := b.AddMessages(language.Russian, russian...); err != nil {
		panic(err)
	}
	return b
}

// New returns a translator for lang ("en" or "ru"). Unknown tags fall back to English.
func New(lang string) *Translator {
	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, lang, language.English.String()),
		lang:      lang,
	}
}

// Language returns the tag the translator was built for.
func (t *Translator) Language() string {
	return t.lang
}

// T renders a message without template data.
func (t *Translator) T(id string) string {
	return t.Tf(id, nil)
}

// Tf renders a message with template data. Unknown IDs render as the ID itself.
func (t *Translator) Tf(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug("missing translation", "id", id, "lang", t.lang, "error", err)
		return id
	}
	return msg
}
