// Package translate localises the user facing messages of the VM.
//
// Messages are keyed by their en-US format string. Other languages are
// registered in the default x/text catalog; the language is chosen at
// start up from DODGEVM_LANG, or else the environment locale.
package translate

import (
	"log"
	"os"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LANG_ENV overrides the environment locale.
const LANG_ENV = "DODGEVM_LANG"

var (
	current language.Tag
	printer *message.Printer
)

func init() {
	register()

	locales := []string{os.Getenv(LANG_ENV)}
	if len(locales[0]) == 0 {
		var err error
		locales, err = locale.GetLocales()
		if err != nil {
			log.Printf("dodgevm: locale: %v", err)
		}
	}

	SetLanguage(Match(locales...))
}

// Match picks the best supported language for a list of locales,
// defaulting to en-US.
func Match(locales ...string) language.Tag {
	var prefs []language.Tag
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		prefs = append(prefs, tag)
	}

	supported := append([]language.Tag{language.AmericanEnglish}, Languages()...)
	_, index, _ := language.NewMatcher(supported).Match(prefs...)
	return supported[index]
}

// Languages returns the languages with registered messages.
func Languages() []language.Tag {
	return message.DefaultCatalog.Languages()
}

// Language returns the current message language.
func Language() language.Tag {
	return current
}

// SetLanguage overrides the locale detected from the environment.
func SetLanguage(tag language.Tag) {
	current = tag
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Error is a sentinel error, translated each time its message is read.
type Error string

func (err Error) Error() string {
	return From(string(err))
}
