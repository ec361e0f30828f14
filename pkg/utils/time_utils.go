package utils

import (
	"strings"
	"time"
)

// DateLayout is the wire format of every trip and section date.
const DateLayout = "2006-01-02"

// India Standard Time (+05:30)
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+30*60)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ParseDate reads a YYYY-MM-DD string as a calendar date in IST.
// A full RFC3339 timestamp is accepted too and truncated to its date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.ParseInLocation(DateLayout, s, istLoc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	y, m, d := t.In(istLoc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, istLoc), nil
}

// FormatDate renders the calendar date of t without shifting its zone, so a
// DATE column read back as UTC midnight keeps its day.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func FromUnixSecondsIST(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(istLoc)
}

func FormatRFC3339IST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(istLoc).Format(time.RFC3339)
}

// CalendarDate pins the calendar day of t to midnight UTC, the form stored in
// DATE columns, so no driver or session time zone can move it.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
