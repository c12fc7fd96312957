package dbx

import (
	"fmt"
	"time"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// UTCTime scans a timestamp column into T, normalised to UTC. It accepts
// native time values as well as the text forms SQLite hands back when a
// column's declared type is not visible to the driver.
type UTCTime struct {
	T *time.Time
}

func (u UTCTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*u.T = v.UTC()
		return nil
	case string:
		return u.parse(v)
	case []byte:
		return u.parse(string(v))
	case nil:
		*u.T = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into time", src)
	}
}

func (u UTCTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*u.T = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse time %q", s)
}
