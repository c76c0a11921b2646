package tzhost

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// posixTZ matches POSIX TZ strings such as "CET-1CEST,M3.5.0,M10.5.0/3" or
// "<+0330>-3:30".
var posixTZ = regexp.MustCompile(`^(?<StdName>[[:alpha:]]{3,}|<[[:alnum:]+-]+>)` +
	`(?<StdOffset>[-+]?[0-9]{1,2}(?::[0-9]{1,2}){0,2})` +
	`(?<DstName>[[:alpha:]]{3,}|<[[:alnum:]+-]+>)?` +
	`(?<DstOffset>[-+]?[0-9]{1,2}(?::[0-9]{1,2}){0,2})?` +
	`(?:,(?<StartRule>(?:J?[0-9]+|M[0-9]+\.[0-9]+\.[0-9]+)(?:/[+-]?[0-9]+(?::[0-9]+){0,2})?)` +
	`,(?<EndRule>(?:J?[0-9]+|M[0-9]+\.[0-9]+\.[0-9]+)(?:/[+-]?[0-9]+(?::[0-9]+){0,2})?))?$`)

// POSIXZone is a decoded POSIX TZ string.
type POSIXZone struct {
	Raw       string
	StdName   string
	StdOffset int // seconds east of UTC
	DstName   string
}

// ParsePOSIX decodes a POSIX TZ string.
func ParsePOSIX(s string) (POSIXZone, error) {
	m := posixTZ.FindStringSubmatch(s)
	if m == nil {
		return POSIXZone{}, fmt.Errorf("invalid POSIX TZ string %q", s)
	}

	west, err := parsePOSIXOffset(m[posixTZ.SubexpIndex("StdOffset")])
	if err != nil {
		return POSIXZone{}, fmt.Errorf("invalid standard offset in %q: %w", s, err)
	}
	if west < -25*3600 || west > 25*3600 {
		return POSIXZone{}, fmt.Errorf("standard offset out of range in %q", s)
	}

	return POSIXZone{
		Raw:       s,
		StdName:   strings.Trim(m[posixTZ.SubexpIndex("StdName")], "<>"),
		StdOffset: -west,
		DstName:   strings.Trim(m[posixTZ.SubexpIndex("DstName")], "<>"),
	}, nil
}

// HasDST reports whether the zone declares a daylight saving regime.
func (z POSIXZone) HasDST() bool {
	return z.DstName != ""
}

// Location compiles the zone into a *time.Location. The zone is encoded as
// a TZif version 2 blob without transitions whose footer carries the TZ
// string, so the runtime evaluates the rule for every instant.
func (z POSIXZone) Location() (*time.Location, error) {
	return time.LoadLocationFromTZData(z.Raw, z.tzif())
}

func (z POSIXZone) tzif() []byte {
	chars := append([]byte(z.StdName), 0)

	var block bytes.Buffer
	// ttinfo: utoff, isdst, desigidx
	_ = binary.Write(&block, binary.BigEndian, int32(z.StdOffset))
	block.WriteByte(0)
	block.WriteByte(0)
	block.Write(chars)

	header := func(buf *bytes.Buffer) {
		buf.WriteString("TZif")
		buf.WriteByte('2')
		buf.Write(make([]byte, 15))
		// isutcnt, isstdcnt, leapcnt, timecnt, typecnt, charcnt
		for _, n := range []uint32{0, 0, 0, 0, 1, uint32(len(chars))} {
			_ = binary.Write(buf, binary.BigEndian, n)
		}
	}

	var out bytes.Buffer
	header(&out)
	out.Write(block.Bytes())
	header(&out)
	out.Write(block.Bytes())
	out.WriteByte('\n')
	out.WriteString(z.Raw)
	out.WriteByte('\n')
	return out.Bytes()
}

// parsePOSIXOffset converts "5", "-10:30" or "+3:30:15" to seconds west of
// UTC.
func parsePOSIXOffset(s string) (int, error) {
	sign := 1
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		s = s[1:]
		sign = -1
	}

	total := 0
	for i, part := range strings.Split(s, ":") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, err
		}
		switch i {
		case 0:
			total += n * 3600
		case 1:
			total += n * 60
		default:
			total += n
		}
	}
	return sign * total, nil
}
