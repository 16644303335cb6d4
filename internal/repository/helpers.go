package repository

import (
	"time"
)

const stampLayout = time.RFC3339

// clock stamps profile writes. Tests pin it.
var clock = time.Now

// stamp formats the write time stored in updated_at.
func stamp() string {
	return clock().UTC().Format(stampLayout)
}

// parseStamp reads an updated_at value; an empty or malformed value yields
// the zero time.
func parseStamp(s string) time.Time {
	t, err := time.Parse(stampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
