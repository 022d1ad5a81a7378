package utils

import "time"

// Japan Standard Time (+09:00). Falls back to a fixed zone when tzdata is missing.
var jstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Tokyo"); err == nil {
		return loc
	}
	return time.FixedZone("JST", 9*3600)
}()

func NowUnixSeconds() int64 { return time.Now().Unix() }

// NowJST is the clock used for execution timestamps.
func NowJST() time.Time { return time.Now().In(jstLoc) }

// InJST returns t in JST. The zero time stays zero.
func InJST(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(jstLoc)
}

func FromUnixSecondsJST(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(jstLoc)
}
