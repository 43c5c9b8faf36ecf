package semantic

import (
	"time"

	"github.com/pkg/errors"
)

// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.6.7
const imfFixdate = "Mon, 02 Jan 2006 15:04:05 GMT"

// FormatDate formats t in IMF-fixdate, always in GMT.
func FormatDate(t time.Time) string {
	return t.UTC().Format(imfFixdate)
}

// ParseDate accepts IMF-fixdate and the two obsolete formats.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC1123,
		time.RFC850,
		time.ANSIC,
	} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q", value)
}
