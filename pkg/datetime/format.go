package datetime

import (
	"strconv"
	"strings"
)

// Rendering templates indexed by 2*overlap + notLocal.
var (
	timeTemplates = [4]string{"%X", "%X (%Z)", "%X (UTC%z)", "%X (%Z,UTC%z)"}
	fullTemplates = [4]string{"%x %X", "%x %X (%Z)", "%x %X (UTC%z)", "%x %X (%Z,UTC%z)"}
	dateTemplates = [2]string{"%x", "%x (%Z)"}
)

const (
	isoBasic        = "%Y%m%dT%H%M%S%z"
	isoExtended     = "%Y-%m-%dT%H:%M:%S%z"
	isoDateBasic    = "%Y%m%d"
	isoDateExtended = "%Y-%m-%d"
)

// Strftime renders dt with a subset of the C strftime conversions:
// %Y %y %m %d %e %j %H %I %M %S %p %u %V %G %z %Z %x %X %F %T %n %t and %%.
// %x and %X follow the calendar locale. Other sequences are copied as is.
func (dt DateTime) Strftime(format string) string {
	if dt.IsZero() {
		return ""
	}
	var b strings.Builder
	dt.strftime(&b, format, dt.Calendar().Locale())
	return b.String()
}

func (dt DateTime) strftime(b *strings.Builder, format string, loc *Locale) {
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' || i+1 == len(format) {
			b.WriteByte(ch)
			continue
		}
		i++
		switch format[i] {
		case 'Y':
			writeYear(b, dt.year)
		case 'y':
			pad(b, abs(dt.year%100), 2)
		case 'm':
			pad(b, int(dt.month), 2)
		case 'd':
			pad(b, dt.day, 2)
		case 'e':
			if dt.day < 10 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(dt.day))
		case 'j':
			pad(b, dt.yearDay, 3)
		case 'H':
			pad(b, dt.hour, 2)
		case 'I':
			h := dt.hour % 12
			if h == 0 {
				h = 12
			}
			pad(b, h, 2)
		case 'M':
			pad(b, dt.minute, 2)
		case 'S':
			pad(b, dt.second, 2)
		case 'p':
			if dt.hour < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case 'u':
			b.WriteString(strconv.Itoa(int(dt.weekday)))
		case 'V':
			pad(b, dt.ISOWeek(), 2)
		case 'G':
			writeYear(b, dt.ISOYear())
		case 'z':
			writeOffset(b, dt.offset)
		case 'Z':
			b.WriteString(dt.zoneName())
		case 'x':
			dt.strftime(b, loc.DateFormat, loc)
		case 'X':
			dt.strftime(b, loc.TimeFormat, loc)
		case 'F':
			dt.strftime(b, isoDateExtended, loc)
		case 'T':
			dt.strftime(b, "%H:%M:%S", loc)
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}
}

// zoneName is the text behind %Z: the wall-clock name, or the zone
// abbreviation when the wall-clock has no name.
func (dt DateTime) zoneName() string {
	if name := dt.wc.Name(); name != "" {
		return name
	}
	return dt.abbrev
}

// DateString renders the date in the locale form, followed by the
// wall-clock name when dt is not in Local.
func (dt DateTime) DateString() string {
	if dt.IsLocal() {
		return dt.Strftime(dateTemplates[0])
	}
	return dt.Strftime(dateTemplates[1])
}

// TimeString renders the time in the locale form. The wall-clock name is
// added outside Local, and the UTC offset inside a fall-back overlap so the
// two occurrences of a repeated time read differently.
func (dt DateTime) TimeString() string {
	return dt.Strftime(timeTemplates[dt.templateIndex()])
}

// String renders date and time like DateString and TimeString.
func (dt DateTime) String() string {
	return dt.Strftime(fullTemplates[dt.templateIndex()])
}

// DateOnlyString renders the date in the locale form alone.
func (dt DateTime) DateOnlyString() string {
	return dt.Strftime("%x")
}

// ISO8601 renders dt as YYYYMMDDThhmmss±hhmm, or YYYY-MM-DDThh:mm:ss±hhmm
// when extended is set.
func (dt DateTime) ISO8601(extended bool) string {
	if extended {
		return dt.Strftime(isoExtended)
	}
	return dt.Strftime(isoBasic)
}

// ISO8601Date renders the date of dt as YYYYMMDD, or YYYY-MM-DD when
// extended is set.
func (dt DateTime) ISO8601Date(extended bool) string {
	if extended {
		return dt.Strftime(isoDateExtended)
	}
	return dt.Strftime(isoDateBasic)
}

func (dt DateTime) templateIndex() int {
	i := 0
	if dt.InDSTOverlap() {
		i += 2
	}
	if !dt.IsLocal() {
		i++
	}
	return i
}

func writeYear(b *strings.Builder, year int) {
	if year < 0 {
		b.WriteByte('-')
	}
	pad(b, abs(year), 4)
}

func writeOffset(b *strings.Builder, offset int) {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	b.WriteByte(sign)
	minutes := offset / 60
	pad(b, minutes/60, 2)
	pad(b, minutes%60, 2)
}

func pad(b *strings.Builder, n, width int) {
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
