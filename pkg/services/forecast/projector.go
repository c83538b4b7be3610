package forecast

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	// Applied when history has no usable month-over-month pair.
	fallbackGrowthRate = 0.05

	horizonMonths = 12
)

// Project compounds the average historical month-over-month growth into a
// 12-month forward series anchored at the first month of the requested
// range. Past months carry their recorded revenue as the actual; months
// with no recorded revenue, and months at or after now, report no actual.
func Project(history []domain.MonthlyRevenue, anchor, now time.Time) []domain.ProjectionPoint {
	months := make([]domain.MonthlyRevenue, len(history))
	copy(months, history)
	sort.Slice(months, func(i, j int) bool {
		return months[i].Date().Before(months[j].Date())
	})

	rate := averageGrowth(months)
	base := baseRevenue(months)
	rateLabel := fmt.Sprintf("%.2f%%", rate*100)

	actuals := make(map[time.Time]decimal.Decimal, len(months))
	for _, m := range months {
		actuals[m.Date()] = m.Revenue
	}

	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]domain.ProjectionPoint, 0, horizonMonths)
	for i := 0; i < horizonMonths; i++ {
		month := start.AddDate(0, i, 0)
		projected := base.Mul(decimal.NewFromFloat(math.Pow(1+rate, float64(i)))).Round(0)

		point := domain.ProjectionPoint{
			PeriodLabel:      month.Format("Jan 2006"),
			ProjectedRevenue: projected,
			GrowthRate:       rateLabel,
		}
		if month.Before(currentMonth) {
			if actual, ok := actuals[month]; ok {
				point.ActualRevenue = &actual
			}
		}
		points = append(points, point)
	}
	return points
}

// averageGrowth averages (curr-prev)/prev over adjacent month pairs.
// Pairs whose previous month has zero revenue are skipped rather than
// dividing by zero; with no usable pair the fallback rate applies.
func averageGrowth(months []domain.MonthlyRevenue) float64 {
	var sum float64
	var count int
	for i := 1; i < len(months); i++ {
		prev := months[i-1].Revenue
		if !prev.IsPositive() {
			continue
		}
		curr := months[i].Revenue
		sum += curr.Sub(prev).Div(prev).InexactFloat64()
		count++
	}
	if count == 0 {
		return fallbackGrowthRate
	}
	return sum / float64(count)
}

// baseRevenue is the most recent month's revenue, or the mean of all known
// months when the most recent is absent, or zero with no history at all.
func baseRevenue(months []domain.MonthlyRevenue) decimal.Decimal {
	if len(months) == 0 {
		return decimal.Zero
	}
	last := months[len(months)-1].Revenue
	if !last.IsZero() {
		return last
	}

	total := decimal.Zero
	for _, m := range months {
		total = total.Add(m.Revenue)
	}
	return total.Div(decimal.NewFromInt(int64(len(months))))
}
