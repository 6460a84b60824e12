package clock

import (
	"testing"
	"time"
)

func TestStamperFormatsInLocation(t *testing.T) {
	fake := Fake(time.Date(2024, 3, 10, 22, 30, 5, 0, time.UTC))

	stamper, err := NewStamper(fake, "Asia/Tokyo", "")
	if err != nil {
		t.Fatalf("NewStamper: %v", err)
	}

	if got, want := stamper.Stamp(), "2024-03-11 07:30:05"; got != want {
		t.Errorf("Stamp() = %q, want %q", got, want)
	}

	fake.Advance(90 * time.Second)
	if got, want := stamper.Stamp(), "2024-03-11 07:31:35"; got != want {
		t.Errorf("Stamp() after Advance = %q, want %q", got, want)
	}
}

func TestStamperDefaults(t *testing.T) {
	fake := Fake(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))

	stamper, err := NewStamper(fake, "", "")
	if err != nil {
		t.Fatalf("NewStamper: %v", err)
	}
	if got := stamper.Location().String(); got != DefaultTimezone {
		t.Errorf("Location() = %q, want %q", got, DefaultTimezone)
	}
	// Cairo is UTC+2 in January.
	if got, want := stamper.Stamp(), "2024-01-15 12:00:00"; got != want {
		t.Errorf("Stamp() = %q, want %q", got, want)
	}
}

func TestStamperCustomLayout(t *testing.T) {
	fake := Fake(time.Date(2024, 6, 1, 8, 5, 0, 0, time.UTC))

	stamper, err := NewStamper(fake, "UTC", time.RFC3339)
	if err != nil {
		t.Fatalf("NewStamper: %v", err)
	}
	if got, want := stamper.Stamp(), "2024-06-01T08:05:00Z"; got != want {
		t.Errorf("Stamp() = %q, want %q", got, want)
	}
}

func TestStamperRejectsUnknownTimezone(t *testing.T) {
	if _, err := NewStamper(Real(), "Mars/Olympus_Mons", ""); err == nil {
		t.Fatal("NewStamper with unknown timezone: expected error")
	}
}
