package prefs

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

// message ids
const (
	MsgThemeLight   = "ThemeLight"
	MsgThemeDark    = "ThemeDark"
	MsgModeEnabled  = "ModeEnabled"
	MsgModeDisabled = "ModeDisabled"
	MsgViewHome     = "ViewHome"
	MsgViewData     = "ViewData"
	MsgViewSync     = "ViewSync"
	MsgViewFavorite = "ViewFavorites"
	MsgViewGallery  = "ViewGallery"
	MsgViewReader   = "ViewReader"
)

// defaultMessages are used when a locale file lacks an id.
var defaultMessages = map[string]string{
	MsgThemeLight:   "Light mode",
	MsgThemeDark:    "Dark mode",
	MsgModeEnabled:  "Mom mode",
	MsgModeDisabled: "Privacy mode",
	MsgViewHome:     "Home",
	MsgViewData:     "Statistics",
	MsgViewSync:     "Sync",
	MsgViewFavorite: "Favorites",
	MsgViewGallery:  "Gallery",
	MsgViewReader:   "Reader",
}

// Labels provides localized display strings.
type Labels struct {
	lang      language.Tag
	localizer *i18n.Localizer
}

// NewLabels loads embedded locales and makes labels for the given language (e.g. "en", "zh").
func NewLabels(lang string) (*Labels, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localesFS, "locales/"+f.Name()); err != nil {
			return nil, fmt.Errorf("failed to load locale %s: %w", f.Name(), err)
		}
	}

	return &Labels{lang: tag, localizer: i18n.NewLocalizer(bundle, tag.String())}, nil
}

// DefaultLabels returns english labels built from default messages only.
func DefaultLabels() *Labels {
	bundle := i18n.NewBundle(language.English)
	return &Labels{lang: language.English, localizer: i18n.NewLocalizer(bundle, language.English.String())}
}

// Lang returns the language tag labels were made for.
func (l *Labels) Lang() string {
	return l.lang.String()
}

// Text returns the localized message for id, falling back to the english default.
func (l *Labels) Text(id string) string {
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if def, ok := defaultMessages[id]; ok {
		cfg.DefaultMessage = &i18n.Message{ID: id, Other: def}
	}
	s, err := l.localizer.Localize(cfg)
	if err != nil {
		if def, ok := defaultMessages[id]; ok {
			return def
		}
		return id
	}
	return s
}
