package timezone_test

import (
	"suitespot/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestDateOf(t *testing.T) {
	d := timezone.DateOf(time.Date(2024, 3, 10, 12, 0, 0, 0, timezone.GetLocation()))

	if d.Hour() != 0 || d.Minute() != 0 || d.Location() != time.UTC {
		t.Errorf("expected midnight UTC, got %v", d)
	}

	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 10 {
		t.Errorf("expected 2024-03-10, got %v", d)
	}
}

func TestParseDate(t *testing.T) {
	d, err := timezone.ParseDate("2024-03-12")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	if !d.Equal(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", d)
	}

	if _, err := timezone.ParseDate("12/03/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}

	if !timezone.Today().Equal(timezone.DateOf(timezone.Now())) {
		t.Error("Today() must equal DateOf(Now())")
	}
}
