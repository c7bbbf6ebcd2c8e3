// Package tracking derives delivery progress for a placed order from its
// creation time alone. The computation is pure: a fixed (order, now) pair
// always yields the same stage and percentage, so polling UIs can recompute
// freely.
package tracking

import (
	"fmt"
	"time"

	"bloomshop/internal/domain"
)

// Stage is one discrete phase of the delivery pipeline.
type Stage struct {
	Name        string
	Description string
	// Duration is the stage length in fractional days. The terminal stage
	// has no duration.
	Duration float64
}

// Stages in delivery order. Durations are cumulative offsets used to place
// an order on the timeline.
var Stages = []Stage{
	{Name: "Order Placed", Description: "Order received and confirmed", Duration: 0.5},
	{Name: "Processing", Description: "Preparing your order", Duration: 1},
	{Name: "Shipped", Description: "On the way to you", Duration: 1.5},
	{Name: "Out for Delivery", Description: "Delivery in progress", Duration: 0.5},
	{Name: "Delivered", Description: "Enjoy!", Duration: 0},
}

const (
	baseDeliveryDays = 3
	// Orders with more than this many lines get one extra day.
	largeOrderLines = 5
)

// Progress is the derived delivery state for one order at one instant.
type Progress struct {
	Stage             int
	Percent           float64
	Remaining         time.Duration
	EstimatedDelivery time.Time
	Delivered         bool
}

// TotalDeliveryDays is the full delivery window for an order: the standard
// window plus an extra day for large orders.
func TotalDeliveryDays(order domain.Order) int {
	days := baseDeliveryDays
	if len(order.Cart) > largeOrderLines {
		days++
	}
	return days
}

// Estimate places the order on the delivery timeline as of now.
func Estimate(order domain.Order, now time.Time) Progress {
	elapsed := now.Sub(order.CreatedAt).Hours() / 24
	totalDays := float64(TotalDeliveryDays(order))
	estimated := order.CreatedAt.Add(time.Duration(totalDays * 24 * float64(time.Hour)))

	cumulative := make([]float64, len(Stages))
	var sum float64
	for i, s := range Stages {
		sum += s.Duration
		cumulative[i] = sum
	}

	last := len(Stages) - 1
	p := Progress{EstimatedDelivery: estimated}

	if elapsed >= totalDays {
		p.Stage = last
		p.Percent = 100
		p.Delivered = true
		return p
	}

	stage := 0
	for i := 0; i < len(cumulative)-1; i++ {
		if elapsed >= cumulative[i] {
			stage = i + 1
		}
	}

	stageStart := 0.0
	if stage > 0 {
		stageStart = cumulative[stage-1]
	}
	stageEnd := cumulative[stage]

	stageProgress := 100.0
	if stage < last {
		stageProgress = clamp((elapsed-stageStart)/(stageEnd-stageStart)*100, 0, 100)
	}

	p.Stage = stage
	p.Percent = clamp(float64(stage)/float64(last)*100+stageProgress/float64(last), 0, 100)
	if remaining := estimated.Sub(now); remaining > 0 {
		p.Remaining = remaining
	} else {
		p.Delivered = true
	}
	return p
}

// FormatRemaining renders the time left in the coarsest useful units, or
// "Delivered!" once the window has passed.
func FormatRemaining(p Progress) string {
	if p.Delivered || p.Remaining <= 0 {
		return "Delivered!"
	}
	days := int(p.Remaining.Hours()) / 24
	hours := int(p.Remaining.Hours()) % 24
	minutes := int(p.Remaining.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
