// Package civilid parses and validates 12-digit Kuwaiti civil identifiers.
//
// Layout of an identifier (0-indexed characters):
//
//	[0]     century flag: 2 -> 1900s, 3 -> 2000s
//	[1:3]   year within the century
//	[3:5]   month
//	[5:7]   day
//	[7:12]  sequence and checksum, not validated here
//
// A valid identifier encodes a real calendar date and belongs to a person
// aged between MinAge and MaxAge inclusive.
package civilid

import (
	"time"
	"unicode/utf8"
)

const (
	// Length is the number of characters in a civil identifier.
	Length = 12

	// MinAge is the youngest eligible age, inclusive.
	MinAge = 18

	// MaxAge is the oldest eligible age, inclusive.
	MaxAge = 104
)

// CivilID is a validated identifier together with the data decoded from it.
type CivilID struct {
	// Value is the original 12-digit identifier.
	Value string `json:"civil_id"`

	// BirthDate is the decoded birth date at midnight UTC.
	BirthDate time.Time `json:"birth_date"`

	// Age is the age in whole years at the moment of validation.
	Age int `json:"age"`
}

// Validate checks id against the current time. See Parse.
func Validate(id string) (CivilID, error) {
	return Parse(id, time.Now())
}

// Parse checks id and decodes its birth date and the age at now.
//
// Rules are applied in order and the first failure is returned as a
// *ValidationError wrapping one of ErrLength, ErrFormat, ErrCentury,
// ErrMonth, ErrDay, ErrCalendar, ErrTooYoung or ErrTooOld.
func Parse(id string, now time.Time) (CivilID, error) {
	if utf8.RuneCountInString(id) != Length {
		return CivilID{}, invalid(id, ErrLength)
	}

	if !WellFormed(id) {
		return CivilID{}, invalid(id, ErrFormat)
	}

	var century int
	switch id[0] {
	case '2':
		century = 1900
	case '3':
		century = 2000
	default:
		return CivilID{}, invalid(id, ErrCentury)
	}

	year := century + twoDigits(id[1:3])
	month := twoDigits(id[3:5])
	day := twoDigits(id[5:7])

	if month < 1 || month > 12 {
		return CivilID{}, invalid(id, ErrMonth)
	}
	if day < 1 || day > 31 {
		return CivilID{}, invalid(id, ErrDay)
	}

	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birth.Year() != year || int(birth.Month()) != month || birth.Day() != day {
		return CivilID{}, invalid(id, ErrCalendar)
	}

	age := AgeAt(birth, now)
	if age < MinAge {
		return CivilID{}, &ValidationError{Value: id, Kind: ErrTooYoung, Age: age}
	}
	if age > MaxAge {
		return CivilID{}, &ValidationError{Value: id, Kind: ErrTooOld, Age: age}
	}

	return CivilID{Value: id, BirthDate: birth, Age: age}, nil
}

// WellFormed reports whether id is exactly Length ASCII digits. It checks
// the shape only, not the date or age rules of Parse.
func WellFormed(id string) bool {
	if len(id) != Length {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// AgeAt returns the age in whole years of someone born on birth, as of now.
// Only the calendar date of now (in its own location) is taken into account.
func AgeAt(birth, now time.Time) int {
	nowYear, nowMonth, nowDay := now.Date()
	age := nowYear - birth.Year()
	if nowMonth < birth.Month() || (nowMonth == birth.Month() && nowDay < birth.Day()) {
		age--
	}
	return age
}

func twoDigits(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

func invalid(id string, kind error) error {
	return &ValidationError{Value: id, Kind: kind}
}
