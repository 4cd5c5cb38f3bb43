package entity

import (
	"testing"
	"time"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Now()

	if got := DeriveStatus(nil); got != StatusPresent {
		t.Errorf("DeriveStatus(nil) = %q, want %q", got, StatusPresent)
	}
	if got := DeriveStatus(&now); got != StatusCheckedOut {
		t.Errorf("DeriveStatus(&now) = %q, want %q", got, StatusCheckedOut)
	}
}
