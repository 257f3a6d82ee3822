// Package i18n localizes the interface strings of the terminal shell.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	NoTabs        = "NoTabs"
	NoItems       = "NoItems"
	NoPage        = "NoPage"
	Loading       = "Loading"
	LoadingSchema = "LoadingSchema"
	PageError     = "PageError"
	KeyOpen       = "KeyOpen"
	KeyBack       = "KeyBack"
	KeyTabs       = "KeyTabs"
	KeyLinks      = "KeyLinks"
	KeyQuit       = "KeyQuit"
	KeyHelp       = "KeyHelp"
)

//go:embed locales/*.toml
var locales embed.FS

// Catalog resolves message IDs for one preferred language.
type Catalog struct {
	localizer *goi18n.Localizer
	tag       language.Tag
}

// New creates a catalog for locale. An empty locale falls back to $LC_ALL,
// $LC_MESSAGES and $LANG, then English.
func New(locale string) (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(locales, file); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", file, err)
		}
	}

	prefs := preferences(locale)
	supported := bundle.LanguageTags()
	_, index, _ := language.NewMatcher(supported).Match(prefs...)

	return &Catalog{
		localizer: goi18n.NewLocalizer(bundle, tagStrings(prefs)...),
		tag:       supported[index],
	}, nil
}

// Tag returns the language messages are served in.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// T returns the message for id. Unknown ids are returned as is.
func (c *Catalog) T(id string) string {
	return c.Tf(id, nil)
}

// Tf is T with template data.
func (c *Catalog) Tf(id string, data map[string]any) string {
	if c == nil {
		return id
	}
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}

func preferences(locale string) []language.Tag {
	candidates := []string{locale, os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG")}
	var tags []language.Tag
	for _, c := range candidates {
		if tag, ok := parsePOSIX(c); ok {
			tags = append(tags, tag)
		}
	}
	return append(tags, language.English)
}

// parsePOSIX accepts BCP 47 tags and POSIX locales such as pt_BR.UTF-8.
func parsePOSIX(s string) (language.Tag, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

func tagStrings(tags []language.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}
