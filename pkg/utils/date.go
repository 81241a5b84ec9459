package utils

import (
	"fmt"
	"time"

	_ "time/tzdata"
)

const SignatureTimestampFormat = "20060102150405"

// Layouts accepted for timestamps that carry no zone information. They are
// interpreted in the partner's location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp reads an ISO-8601 timestamp. Values with an offset or a
// trailing Z are absolute; anything else is taken to be wall time in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("error parsing time: unsupported timestamp %q", value)
}

// FormatSignatureTimestamp renders t in UTC as yyyyMMddHHmmss.
func FormatSignatureTimestamp(t time.Time) string {
	return t.UTC().Format(SignatureTimestampFormat)
}

func LoadPartnerLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("error loading partner time zone: %v", err)
	}

	return loc, nil
}
