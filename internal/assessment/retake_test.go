package assessment

import (
	"testing"
	"time"
)

func TestRetakeBlockedBeforeSixMonths(t *testing.T) {
	last := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	now := last.AddDate(0, 5, 0)
	st := RetakeStatusAt(last, now)
	if st.CanRetake {
		t.Fatal("expected retake to be blocked at five months")
	}
	if st.DaysRemaining <= 0 {
		t.Fatalf("days remaining = %d, want > 0", st.DaysRemaining)
	}
	if want := last.AddDate(0, RetakeIntervalMonths, 0); !st.AvailableAt.Equal(want) {
		t.Fatalf("available at = %v, want %v", st.AvailableAt, want)
	}
}

func TestRetakeAllowedAfterSixMonths(t *testing.T) {
	last := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	st := RetakeStatusAt(last, last.AddDate(0, 7, 0))
	if !st.CanRetake {
		t.Fatal("expected retake to be allowed at seven months")
	}
	if st.DaysRemaining != 0 {
		t.Fatalf("days remaining = %d, want 0", st.DaysRemaining)
	}
}

func TestRetakeAllowedExactlyAtBoundary(t *testing.T) {
	last := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	st := RetakeStatusAt(last, last.AddDate(0, RetakeIntervalMonths, 0))
	if !st.CanRetake {
		t.Fatal("expected retake to be allowed exactly at the boundary")
	}
}

func TestRetakeDaysRemainingCeils(t *testing.T) {
	last := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	availableAt := last.AddDate(0, RetakeIntervalMonths, 0)
	now := availableAt.Add(-25 * time.Hour)
	st := RetakeStatusAt(last, now)
	if st.DaysRemaining != 2 {
		t.Fatalf("days remaining = %d, want 2 (25h rounds up)", st.DaysRemaining)
	}
}
