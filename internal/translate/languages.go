package translate

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrUnsupportedLanguage indicates a language tag that cannot be parsed
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is an entry of the language selector
type Language struct {
	Tag  language.Tag
	Name string
}

// Code returns the tag in BCP 47 form, e.g. "hi-IN"
func (l Language) Code() string {
	return l.Tag.String()
}

var supported = []language.Tag{
	language.MustParse("ar-SA"),
	language.MustParse("zh-CN"),
	language.MustParse("en-US"),
	language.MustParse("fr-FR"),
	language.MustParse("de-DE"),
	language.MustParse("hi-IN"),
	language.MustParse("it-IT"),
	language.MustParse("ja-JP"),
	language.MustParse("ko-KR"),
	language.MustParse("pt-PT"),
	language.MustParse("ru-RU"),
	language.MustParse("es-ES"),
	language.MustParse("tr-TR"),
}

// Languages returns the languages offered by default, with English names
func Languages() []Language {
	namer := display.English.Tags()

	out := make([]Language, 0, len(supported))
	for _, tag := range supported {
		out = append(out, Language{Tag: tag, Name: namer.Name(tag)})
	}
	return out
}

// ParseLanguage validates and canonicalizes a BCP 47 tag. Underscores are
// accepted as separators ("en_US").
func ParseLanguage(s string) (language.Tag, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return language.Und, fmt.Errorf("%w: empty language", ErrUnsupportedLanguage)
	}

	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %w", ErrUnsupportedLanguage, s, err)
	}

	if tag == language.Und {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}

	return tag, nil
}

// DisplayName returns the English name of a language tag
func DisplayName(tag language.Tag) string {
	return display.English.Tags().Name(tag)
}

var matcher = language.NewMatcher(supported)

// Closest returns the offered language that best serves tag. ok is false
// when no offered language is a reasonable substitute, as with a different
// base language.
func Closest(tag language.Tag) (l Language, ok bool) {
	_, idx, conf := matcher.Match(tag)
	t := supported[idx]
	return Language{Tag: t, Name: DisplayName(t)}, conf >= language.High
}
