package datetime

import "testing"

func TestParseYMD(t *testing.T) {
	d, err := ParseYMD("2015-01-23")
	if err != nil {
		t.Fatal(err)
	}
	if d != (Date{2015, 1, 23}) {
		t.Fatalf("got %+v", d)
	}
}

func TestParseMDY(t *testing.T) {
	d, err := ParseMDY("1/23/2015")
	if err != nil {
		t.Fatal(err)
	}
	if d != (Date{2015, 1, 23}) {
		t.Fatalf("got %+v", d)
	}
}

func TestParseTime(t *testing.T) {
	tm, err := ParseTime("12:30:45.5")
	if err != nil {
		t.Fatal(err)
	}
	want := Time{Hour: 12, Minute: 30, Second: 45, Micro: 500000}
	if tm != want {
		t.Fatalf("got %+v, want %+v", tm, want)
	}
}

func TestParseTimeNoFraction(t *testing.T) {
	tm, err := ParseTime("00:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if tm != (Time{}) {
		t.Fatalf("got %+v", tm)
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2015-01-23 12:30:45.5")
	if err != nil {
		t.Fatal(err)
	}
	want := Timestamp{Date: Date{2015, 1, 23}, Time: Time{12, 30, 45, 500000}}
	if ts != want {
		t.Fatalf("got %+v, want %+v", ts, want)
	}
}

func TestParseTimestampTZ(t *testing.T) {
	ts, err := ParseTimestampTZ("2015-01-23 12:30:45.5+03:15")
	if err != nil {
		t.Fatal(err)
	}
	if ts.Year != 2015 || ts.Month != 1 || ts.Day != 23 {
		t.Fatalf("date: %+v", ts.Date)
	}
	if ts.Hour != 12 || ts.Minute != 30 || ts.Second != 45 || ts.Micro != 500000 {
		t.Fatalf("time: %+v", ts.Time)
	}
	if ts.TZSign != '+' || ts.TZHour != 3 || ts.TZMinute != 15 {
		t.Fatalf("tz: sign=%q hour=%d minute=%d", ts.TZSign, ts.TZHour, ts.TZMinute)
	}
}

func TestParseMalformedInputsRejected(t *testing.T) {
	if _, err := ParseYMD("2015/01/23"); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if _, err := ParseTime("12:30"); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if _, err := ParseTimestampTZ("2015-01-23 12:30:45"); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
