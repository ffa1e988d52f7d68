package dashboard_case

import (
	"testing"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestUtilizationPct(t *testing.T) {
	// 32h auf 40h − 8h effektiv = 100 %
	assert.Equal(t, 100.0, UtilizationPct(32, 40, 8))
	assert.Equal(t, 50.0, UtilizationPct(16, 40, 8))
	assert.Equal(t, 0.0, UtilizationPct(0, 40, 8))
}

// Effektive Kapazität ≤ 0 darf nie durch null teilen.
func TestUtilizationPct_NonPositiveCapacity(t *testing.T) {
	assert.Equal(t, 0.0, UtilizationPct(10, 8, 8))
	assert.Equal(t, 0.0, UtilizationPct(10, 4, 8))
}

// Werte genau auf der Schwelle gehören zum höheren Bucket.
func TestSeverityFor_Boundaries(t *testing.T) {
	assert.Equal(t, entity.TierOk, SeverityFor(74.9))
	assert.Equal(t, entity.TierInfo, SeverityFor(75))
	assert.Equal(t, entity.TierInfo, SeverityFor(89.9))
	assert.Equal(t, entity.TierWarning, SeverityFor(90))
	assert.Equal(t, entity.TierWarning, SeverityFor(99.9))
	assert.Equal(t, entity.TierCritical, SeverityFor(100))
	assert.Equal(t, entity.TierCritical, SeverityFor(119.9))
	assert.Equal(t, entity.TierOverallocated, SeverityFor(120))
	assert.Equal(t, entity.TierOverallocated, SeverityFor(240))
}

// Wochen-Override ersetzt die Basisstunden, er addiert sich nicht.
func TestAllocatedHoursForWeek_OverrideReplaces(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	allocations := []entity.AllocationEntity{
		{
			ID:             "alloc-1",
			AllocatedHours: 20,
			WeeklyAllocations: map[string]float64{
				"2026-W35": 12,
			},
			StartDate: start,
			Status:    entity.AllocationActive,
		},
		{
			ID:             "alloc-2",
			AllocatedHours: 10,
			StartDate:      start,
			Status:         entity.AllocationActive,
		},
	}

	assert.Equal(t, 22.0, AllocatedHoursForWeek(allocations, "2026-W35"))
	// Ohne Override greifen die Basisstunden.
	assert.Equal(t, 30.0, AllocatedHoursForWeek(allocations, "2026-W36"))
}

func TestAllocatedHoursForWeek_SkipsInactiveAndNonOverlapping(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	ended := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	allocations := []entity.AllocationEntity{
		{ID: "cancelled", AllocatedHours: 20, StartDate: start, Status: entity.AllocationCancelled},
		{ID: "past", AllocatedHours: 20, StartDate: start.AddDate(0, -2, 0), EndDate: &ended, Status: entity.AllocationActive},
		{ID: "future", AllocatedHours: 20, StartDate: start.AddDate(0, 2, 0), Status: entity.AllocationActive},
	}

	assert.Equal(t, 0.0, AllocatedHoursForWeek(allocations, "2026-W35"))
}

func TestTrendSlope(t *testing.T) {
	// Linear steigende Serie: Steigung exakt 5 pro Woche.
	assert.Equal(t, 5.0, TrendSlope([]float64{70, 75, 80, 85}))
	// Nur die letzten vier Punkte zählen.
	assert.Equal(t, 5.0, TrendSlope([]float64{10, 200, 70, 75, 80, 85}))
	// Flache Serie.
	assert.Equal(t, 0.0, TrendSlope([]float64{80, 80, 80, 80}))
	// Unter zwei Punkten keine Aussage.
	assert.Equal(t, 0.0, TrendSlope([]float64{80}))
	assert.Equal(t, 0.0, TrendSlope(nil))
}

func TestDaysToConflict(t *testing.T) {
	// Bereits im Konflikt: 0 Tage.
	days := DaysToConflict(104, 5)
	assert.NotNil(t, days)
	assert.Equal(t, 0, *days)

	// 90 % mit +5 pro Woche: 2 Wochen = 14 Tage.
	days = DaysToConflict(90, 5)
	assert.NotNil(t, days)
	assert.Equal(t, 14, *days)

	// Fallende oder flache Auslastung projiziert keinen Konflikt.
	assert.Nil(t, DaysToConflict(90, 0))
	assert.Nil(t, DaysToConflict(90, -3))
}

func TestAccuracyPct(t *testing.T) {
	// 10 % Abweichung in beiden Wochen → 90 % Genauigkeit.
	accuracy, count := AccuracyPct([]PlannedVsLogged{
		{Planned: 20, Logged: 18},
		{Planned: 20, Logged: 22},
	})
	assert.NotNil(t, accuracy)
	assert.InDelta(t, 90.0, *accuracy, 0.001)
	assert.Equal(t, 2, count)

	// Wochen ohne geplante Stunden liefern keinen Messpunkt.
	accuracy, count = AccuracyPct([]PlannedVsLogged{{Planned: 0, Logged: 8}})
	assert.Nil(t, accuracy)
	assert.Equal(t, 0, count)

	// Extreme Abweichung wird auf 0 gedeckelt, nie negativ.
	accuracy, _ = AccuracyPct([]PlannedVsLogged{{Planned: 10, Logged: 40}})
	assert.NotNil(t, accuracy)
	assert.Equal(t, 0.0, *accuracy)
}

func TestGamifiedScoring(t *testing.T) {
	// 85 % ist der Sweet-Spot der Balance.
	assert.Equal(t, 100.0, BalancePoints(85))
	assert.Equal(t, 90.0, BalancePoints(90))
	assert.Equal(t, 0.0, BalancePoints(160))

	assert.Equal(t, 100.0, DisciplinePoints(32, 32))
	assert.Equal(t, 50.0, DisciplinePoints(16, 32))
	// Überbuchung gibt keine Bonuspunkte.
	assert.Equal(t, 100.0, DisciplinePoints(40, 32))
	assert.Equal(t, 0.0, DisciplinePoints(10, 0))

	assert.Equal(t, 100, GamifiedScore(100, 100))
	assert.Equal(t, 80, GamifiedScore(100, 50))
}

func TestBadgeFor(t *testing.T) {
	assert.Equal(t, "Kapazitäts-Meister", BadgeFor(90))
	assert.Equal(t, "Planprofi", BadgeFor(75))
	assert.Equal(t, "Solide", BadgeFor(50))
	assert.Equal(t, "Einsteiger", BadgeFor(49))
}
