package attendance

import (
	"testing"
	"time"
)

func TestTotalHours(t *testing.T) {
	checkIn := time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut *time.Time
		want     string
	}{
		{"open record", nil, ""},
		{"full day", timePtr(checkIn.Add(8*time.Hour + 30*time.Minute)), "08:30"},
		{"short shift", timePtr(checkIn.Add(45 * time.Minute)), "00:45"},
		{"long shift", timePtr(checkIn.Add(12 * time.Hour)), "12:00"},
		{"checkout before checkin clamps to zero", timePtr(checkIn.Add(-time.Hour)), "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalHours(checkIn, tt.checkOut); got != tt.want {
				t.Errorf("TotalHours() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := parseTimestamp("2025-03-09T09:15:00Z", "checkInTime")
	if err != nil {
		t.Fatalf("parseTimestamp() error = %v", err)
	}
	want := time.Date(2025, 3, 9, 9, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseTimestamp() = %v, want %v", got, want)
	}

	if _, err := parseTimestamp("09:15", "checkInTime"); err == nil {
		t.Error("expected an error for a non RFC3339 value")
	}
}

func TestParseDay(t *testing.T) {
	got, err := parseDay("2025-03-09", "attendanceDate")
	if err != nil {
		t.Fatalf("parseDay() error = %v", err)
	}
	if got.Format("2006-01-02") != "2025-03-09" {
		t.Errorf("parseDay() = %v, want 2025-03-09", got)
	}

	if _, err := parseDay("March 9", "attendanceDate"); err == nil {
		t.Error("expected an error for an invalid date value")
	}
}

func timePtr(v time.Time) *time.Time {
	return &v
}
