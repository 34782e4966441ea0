package ber

import "time"

/*
time.go implements the ASN.1 UTCTime and GeneralizedTime accessors
(§4.3, component C3, tags 23 and 24). Grounded on the teacher's
time.go: parseUTCCore/parseUTCTimezone/formatUTCTime for UTCTime (the
two-digit-year century split at 50 and the 'Z'/±hhmm timezone suffix
grammar are reused) and the core date-time/fraction/timezone parse
chain it uses for GeneralizedTime, adapted from the teacher's
multi-type Temporal family down to the two classic BER time types
spec.md names.
*/

func utcDigit(b byte) bool     { return '0' <= b && b <= '9' }
func utcToInt(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }

/*
UTCTime decodes e as a UTCTime: YYMMDDhhmm[ss](Z|+hhmm|-hhmm). Two-digit
years 50-99 map to 1950-1999, 00-49 to 2000-2049, per X.690 §11.8's
convention (also the teacher's parseUTCTime).
*/
func (e Element) UTCTime() (time.Time, error) {
	if err := requirePrimitive(e, "UTCTime"); err != nil {
		return time.Time{}, err
	}
	s := string(e.Content)
	if len(s) < 11 {
		return time.Time{}, newErr(Value, "UTCTime", "UTCTime", "too short")
	}
	for k := 0; k < 10; k++ {
		if !utcDigit(s[k]) {
			return time.Time{}, newErr(Value, "UTCTime", "UTCTime", "non-digit in date/time core")
		}
	}

	hasSec := utcDigit(s[10])
	yy := utcToInt(s[0], s[1])
	mm := utcToInt(s[2], s[3])
	dd := utcToInt(s[4], s[5])
	hr := utcToInt(s[6], s[7])
	mn := utcToInt(s[8], s[9])

	var sc, tzIdx int
	if hasSec {
		if len(s) < 13 {
			return time.Time{}, newErr(Value, "UTCTime", "UTCTime", "truncated seconds field")
		}
		sc = utcToInt(s[10], s[11])
		tzIdx = 12
	} else {
		tzIdx = 10
	}

	loc, err := parseTimezoneSuffix(s, tzIdx)
	if err != nil {
		return time.Time{}, newErr(Value, "UTCTime", "UTCTime", err.Error())
	}

	if yy < 50 {
		yy += 2000
	} else {
		yy += 1900
	}
	return time.Date(yy, time.Month(mm), dd, hr, mn, sc, 0, loc), nil
}

// SetUTCTime returns a new Element encoding t as a UTCTime, universal
// class, tag 23, primitive, always in Zulu (UTC) form.
func SetUTCTime(t time.Time) Element {
	t = t.UTC()
	var b [11]byte
	put2 := func(idx, v int) {
		b[idx] = byte('0' + v/10)
		b[idx+1] = byte('0' + v%10)
	}
	put2(0, t.Year()%100)
	put2(2, int(t.Month()))
	put2(4, t.Day())
	put2(6, t.Hour())
	put2(8, t.Minute())
	b[10] = 'Z'
	return Element{Class: ClassUniversal, Tag: TagUTCTime, Content: b[:]}
}

/*
GeneralizedTime decodes e as a GeneralizedTime:
YYYYMMDDHHMMSS[.fff](Z|+hhmm|-hhmm), with the fractional-seconds
component and timezone suffix both optional per X.690 §11.7.
*/
func (e Element) GeneralizedTime() (time.Time, error) {
	if err := requirePrimitive(e, "GeneralizedTime"); err != nil {
		return time.Time{}, err
	}
	s := string(e.Content)
	if len(s) < 14 {
		return time.Time{}, newErr(Value, "GeneralizedTime", "GeneralizedTime", "too short")
	}
	for k := 0; k < 14; k++ {
		if !utcDigit(s[k]) {
			return time.Time{}, newErr(Value, "GeneralizedTime", "GeneralizedTime", "non-digit in date/time core")
		}
	}

	year := utcToInt(s[0], s[1])*100 + utcToInt(s[2], s[3])
	mon := utcToInt(s[4], s[5])
	day := utcToInt(s[6], s[7])
	hr := utcToInt(s[8], s[9])
	mn := utcToInt(s[10], s[11])
	sc := utcToInt(s[12], s[13])

	i := 14
	nsec := 0
	if i < len(s) && (s[i] == '.' || s[i] == ',') {
		j := i + 1
		for j < len(s) && utcDigit(s[j]) {
			j++
		}
		if j == i+1 {
			return time.Time{}, newErr(Value, "GeneralizedTime", "GeneralizedTime", "empty fractional-seconds field")
		}
		frac := s[i+1 : j]
		for len(frac) < 9 {
			frac += "0"
		}
		for k := 0; k < 9; k++ {
			nsec = nsec*10 + int(frac[k]-'0')
		}
		i = j
	}

	loc, err := parseTimezoneSuffix(s, i)
	if err != nil {
		return time.Time{}, newErr(Value, "GeneralizedTime", "GeneralizedTime", err.Error())
	}
	return time.Date(year, time.Month(mon), day, hr, mn, sc, nsec, loc), nil
}

// SetGeneralizedTime returns a new Element encoding t as a
// GeneralizedTime, universal class, tag 24, primitive, always in Zulu
// (UTC) form with no fractional seconds.
func SetGeneralizedTime(t time.Time) Element {
	t = t.UTC()
	b := make([]byte, 0, 15)
	put4 := func(v int) { b = append(b, byte('0'+v/1000%10), byte('0'+v/100%10), byte('0'+v/10%10), byte('0'+v%10)) }
	put2 := func(v int) { b = append(b, byte('0'+v/10), byte('0'+v%10)) }
	put4(t.Year())
	put2(int(t.Month()))
	put2(t.Day())
	put2(t.Hour())
	put2(t.Minute())
	put2(t.Second())
	b = append(b, 'Z')
	return Element{Class: ClassUniversal, Tag: TagGeneralizedTime, Content: b}
}

// parseTimezoneSuffix parses the 'Z' or '+hhmm'/'-hhmm' suffix shared by
// UTCTime and GeneralizedTime, starting at s[idx].
func parseTimezoneSuffix(s string, idx int) (*time.Location, error) {
	if idx >= len(s) {
		return nil, newErr(Value, "", "", "missing timezone suffix")
	}
	switch s[idx] {
	case 'Z':
		if idx != len(s)-1 {
			return nil, newErr(Value, "", "", "trailing data after Z")
		}
		return time.UTC, nil
	case '+', '-':
		if idx+5 != len(s) {
			return nil, newErr(Value, "", "", "malformed timezone offset")
		}
		for k := 1; k <= 4; k++ {
			if !utcDigit(s[idx+k]) {
				return nil, newErr(Value, "", "", "non-digit in timezone offset")
			}
		}
		hh := utcToInt(s[idx+1], s[idx+2])
		mm := utcToInt(s[idx+3], s[idx+4])
		if hh > 23 || mm > 59 {
			return nil, newErr(Value, "", "", "timezone offset out of range")
		}
		off := (hh*60 + mm) * 60
		if s[idx] == '-' {
			off = -off
		}
		return time.FixedZone("", off), nil
	default:
		return nil, newErr(Value, "", "", "unrecognized timezone suffix")
	}
}
