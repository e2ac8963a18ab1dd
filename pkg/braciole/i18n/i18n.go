package i18n

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

// MessageFile is a translation file loaded from memory, e.g. embedded in
// the consuming binary.
type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// active returns the current localizer, initializing an English-only
// default so callers never need to call Init first.
func active() *I18N {
	if i == nil {
		bundle := newBundle()
		i = &I18N{
			localizer: i18n.NewLocalizer(bundle, language.English.String()),
			bundle:    bundle,
		}
	}
	return i
}

// Init loads translation files (JSON or TOML) from disk.
func Init(messageFilePaths []string) error {
	bundle := newBundle()
	for _, path := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return err
		}
	}
	i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}
	return nil
}

// InitFromBytes loads translation files held in memory.
func InitFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()
	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return err
		}
	}
	i = &I18N{localizer: i18n.NewLocalizer(bundle, language.English.String()), bundle: bundle}
	return nil
}

// SetLanguage switches the active locale.
func SetLanguage(lang language.Tag) {
	cur := active()
	i = &I18N{localizer: i18n.NewLocalizer(cur.bundle, lang.String()), bundle: cur.bundle}
}

// SetWithCode switches the active locale from a BCP 47 code like "es".
func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Message is an alias for i18n.Message so consumers do not need to
// import go-i18n directly.
type Message = i18n.Message

// Localize resolves a message for the current locale, falling back to
// the default message text when no translation exists.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}

	config := &i18n.LocalizeConfig{DefaultMessage: message}
	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := active().localizer.Localize(config)
	if err != nil {
		return message.Other
	}
	return msg
}

// GetString retrieves a localized string by key; the key itself is the
// fallback.
func GetString(key string) string {
	msg, err := active().localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}
