package ptr

import "time"

func To[T any](v T) *T {
	return &v
}

func String(s string) *string {
	return &s
}

func Time(t time.Time) *time.Time {
	return &t
}
