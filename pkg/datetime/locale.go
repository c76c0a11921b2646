package datetime

import (
	"strings"

	"github.com/wealthpath/calendar/internal/apperror"
)

// Locale describes how dates and times are written and read.
type Locale struct {
	Name string

	// DateFormat and TimeFormat are the strftime patterns behind %x and %X.
	DateFormat string
	TimeFormat string

	// Layouts tried by SetDateFromString and SetTimeFromString, in order,
	// before the numeric forms shared by every locale. They use the
	// time.Parse reference time.
	DateLayouts []string
	TimeLayouts []string
}

// Built-in locales.
var (
	LocaleC = &Locale{
		Name:        "C",
		DateFormat:  "%m/%d/%y",
		TimeFormat:  "%H:%M:%S",
		DateLayouts: []string{"1/2/06", "1/2/2006"},
		TimeLayouts: []string{"15:4:5"},
	}
	LocaleEnUS = &Locale{
		Name:        "en_US",
		DateFormat:  "%m/%d/%Y",
		TimeFormat:  "%I:%M:%S %p",
		DateLayouts: []string{"1/2/2006", "1/2/06"},
		TimeLayouts: []string{"3:4:5 PM", "15:4:5"},
	}
	LocaleFrFR = &Locale{
		Name:        "fr_FR",
		DateFormat:  "%d/%m/%Y",
		TimeFormat:  "%H:%M:%S",
		DateLayouts: []string{"2/1/2006", "2/1/06"},
		TimeLayouts: []string{"15:4:5"},
	}
	LocaleDeDE = &Locale{
		Name:        "de_DE",
		DateFormat:  "%d.%m.%Y",
		TimeFormat:  "%H:%M:%S",
		DateLayouts: []string{"2.1.2006", "2.1.06"},
		TimeLayouts: []string{"15:4:5"},
	}
)

var locales = map[string]*Locale{
	"C":     LocaleC,
	"POSIX": LocaleC,
	"en_US": LocaleEnUS,
	"fr_FR": LocaleFrFR,
	"de_DE": LocaleDeDE,
}

// Numeric forms accepted in every locale.
var (
	numericDateLayouts = []string{"2006-1-2", "2006−1−2", "2006 1 2"}
	numericTimeLayouts = []string{"15:4:5", "15 4 5", "15:4", "15 4"}
)

// LocaleByName returns a built-in locale. A codeset suffix such as
// ".UTF-8" is ignored and the empty name selects C.
func LocaleByName(name string) (*Locale, error) {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return LocaleC, nil
	}
	l, ok := locales[name]
	if !ok {
		return nil, apperror.InvalidArgument("locale", "unsupported locale "+name)
	}
	return l, nil
}

func (l *Locale) dateLayouts() []string {
	return append(append([]string(nil), l.DateLayouts...), numericDateLayouts...)
}

func (l *Locale) timeLayouts() []string {
	return append(append([]string(nil), l.TimeLayouts...), numericTimeLayouts...)
}
