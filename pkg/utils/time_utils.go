package utils

import "time"

// DB rows store unix seconds; responses render RFC3339 UTC.

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FormatUnixSeconds(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format(time.RFC3339)
}
