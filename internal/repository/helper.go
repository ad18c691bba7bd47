package repository

import (
	"fmt"
	"time"
)

// timeLayouts are the formats SQLite hands back depending on how a value was
// bound: bare dates, CURRENT_TIMESTAMP defaults, and RFC3339.
var timeLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

// ParseTime parses a date string in any of the layouts SQLite produces.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if returnTime, err := time.Parse(layout, str); err == nil {
			return returnTime.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}
