package tracking

import (
	"math"
	"testing"
	"time"

	"bloomshop/internal/domain"
)

func orderWithLines(n int, createdAt time.Time) domain.Order {
	items := make([]domain.CartItem, n)
	for i := range items {
		items[i] = domain.CartItem{ID: "line", Quantity: 1, Price: 10}
	}
	return domain.Order{ID: "o1", Cart: items, CreatedAt: createdAt}
}

func TestEstimateDeliveredAfterWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	order := orderWithLines(3, now.Add(-4*24*time.Hour))

	p := Estimate(order, now)
	if p.Stage != len(Stages)-1 {
		t.Fatalf("stage = %d, want terminal %d", p.Stage, len(Stages)-1)
	}
	if p.Percent != 100 {
		t.Fatalf("percent = %v, want 100", p.Percent)
	}
	if !p.Delivered {
		t.Fatalf("expected Delivered")
	}
	if got := FormatRemaining(p); got != "Delivered!" {
		t.Fatalf("FormatRemaining = %q, want %q", got, "Delivered!")
	}
}

func TestEstimateFreshOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := Estimate(orderWithLines(1, now), now)
	if p.Stage != 0 {
		t.Fatalf("stage = %d, want 0", p.Stage)
	}
	if p.Percent != 0 {
		t.Fatalf("percent = %v, want 0", p.Percent)
	}
	if p.Delivered {
		t.Fatalf("fresh order must not be delivered")
	}
	if p.Remaining != 3*24*time.Hour {
		t.Fatalf("remaining = %v, want 72h", p.Remaining)
	}
}

func TestEstimateMidWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	// Two days in: past Placed (0.5d) and Processing (1.5d cumulative),
	// a third of the way through Shipped.
	p := Estimate(orderWithLines(2, now.Add(-48*time.Hour)), now)
	if p.Stage != 2 {
		t.Fatalf("stage = %d, want 2 (Shipped)", p.Stage)
	}
	want := 2.0/4.0*100 + (0.5/1.5*100)/4.0
	if math.Abs(p.Percent-want) > 1e-9 {
		t.Fatalf("percent = %v, want %v", p.Percent, want)
	}
	if p.Remaining != 24*time.Hour {
		t.Fatalf("remaining = %v, want 24h", p.Remaining)
	}
}

func TestEstimateLargeOrderGetsExtraDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	createdAt := now.Add(-time.Duration(3.2 * 24 * float64(time.Hour)))

	small := Estimate(orderWithLines(5, createdAt), now)
	if !small.Delivered {
		t.Fatalf("5-line order should be delivered after 3.2d")
	}

	large := Estimate(orderWithLines(6, createdAt), now)
	if large.Delivered {
		t.Fatalf("6-line order has a 4-day window, should still be in flight")
	}
	if large.Stage != 3 {
		t.Fatalf("stage = %d, want 3 (Out for Delivery)", large.Stage)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	order := orderWithLines(4, now.Add(-30*time.Hour))
	first := Estimate(order, now)
	for i := 0; i < 5; i++ {
		if got := Estimate(order, now); got != first {
			t.Fatalf("recompute %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestEstimatePercentMonotonic(t *testing.T) {
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	order := orderWithLines(2, createdAt)
	prev := -1.0
	for hours := 0; hours <= 80; hours += 4 {
		p := Estimate(order, createdAt.Add(time.Duration(hours)*time.Hour))
		if p.Percent < prev {
			t.Fatalf("percent decreased at +%dh: %v < %v", hours, p.Percent, prev)
		}
		if p.Percent < 0 || p.Percent > 100 {
			t.Fatalf("percent out of range at +%dh: %v", hours, p.Percent)
		}
		prev = p.Percent
	}
}

func TestFormatRemainingUnits(t *testing.T) {
	cases := []struct {
		remaining time.Duration
		want      string
	}{
		{2*24*time.Hour + 3*time.Hour + 4*time.Minute, "2d 3h 4m"},
		{5*time.Hour + 12*time.Minute, "5h 12m"},
		{42 * time.Minute, "42m"},
		{0, "Delivered!"},
	}
	for _, tc := range cases {
		got := FormatRemaining(Progress{Remaining: tc.remaining})
		if got != tc.want {
			t.Fatalf("FormatRemaining(%v) = %q, want %q", tc.remaining, got, tc.want)
		}
	}
}
