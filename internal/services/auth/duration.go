package auth

import (
	"regexp"
	"strconv"
)

var reDuration = regexp.MustCompile(`^(\d+)([dhms])$`)

// ParseDurationSeconds converts an expiry spec like "1d", "2h", "30m" or
// "45s" to seconds. Fractional values and combined units are rejected.
func ParseDurationSeconds(spec string) (int64, error) {
	m := reDuration.FindStringSubmatch(spec)
	if m == nil {
		return 0, ErrInvalidDuration
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidDuration
	}

	switch m[2] {
	case "d":
		return n * 86400, nil
	case "h":
		return n * 3600, nil
	case "m":
		return n * 60, nil
	default: // "s"
		return n, nil
	}
}
