package utils

import "time"

// ParseDateBound parses an optional YYYY-MM-DD date into a range bound
// in local time. A nil or empty input yields a nil bound. When endOfDay
// is true the bound is the last second of that day, making the range
// inclusive.
func ParseDateBound(s *string, endOfDay bool) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation("2006-01-02", *s, time.Local)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t, nil
}
