package domain_test

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/tablebook/internal/domain"
)

func TestDefaultTimeslotCatalog_Slots(t *testing.T) {
	catalog := domain.DefaultTimeslotCatalog()

	slots := catalog.All()
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(slots))
	}

	if slots[0].Hour() != 10 || slots[0].Minute() != 0 {
		t.Fatalf("expected first slot 10:00, got %02d:%02d", slots[0].Hour(), slots[0].Minute())
	}
	if slots[len(slots)-1].Hour() != 20 {
		t.Fatalf("expected last slot 20:00, got %02d:%02d", slots[len(slots)-1].Hour(), slots[len(slots)-1].Minute())
	}

	for i := 1; i < len(slots); i++ {
		if !slots[i-1].Before(slots[i]) {
			t.Fatalf("slots must be ascending, got %v before %v", slots[i-1], slots[i])
		}
	}
}

func TestTimeslotCatalog_Contains(t *testing.T) {
	catalog := domain.DefaultTimeslotCatalog()

	noon := time.Date(2026, time.March, 12, 12, 0, 0, 0, time.Local)
	if !catalog.Contains(noon) {
		t.Fatal("12:00 must be in the catalog")
	}

	one := time.Date(2026, time.March, 12, 13, 0, 0, 0, time.Local)
	if catalog.Contains(one) {
		t.Fatal("13:00 must not be in the catalog")
	}

	halfPast := time.Date(2026, time.March, 12, 12, 30, 0, 0, time.Local)
	if catalog.Contains(halfPast) {
		t.Fatal("12:30 must not be in the catalog")
	}
}

func TestTimeslotCatalog_AllReturnsCopy(t *testing.T) {
	catalog := domain.DefaultTimeslotCatalog()

	slots := catalog.All()
	slots[0] = time.Date(0, time.January, 1, 23, 59, 0, 0, time.UTC)

	if catalog.Contains(slots[0]) {
		t.Fatal("mutating the returned slice must not affect the catalog")
	}
}
