package dashboard_case

import (
	"math"

	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
)

// Reine Kapazitätsrechnung. Alles hier arbeitet auf bereits geladenen Zeilen
// und ist frei von I/O, damit die Kennzahlen isoliert testbar bleiben.

// EffectiveCapacity ist die Wochenkapazität abzüglich der fixen
// Nicht-Projekt-Stunden (Meetings/Admin).
func EffectiveCapacity(weeklyCapacity, nonProjectHours float64) float64 {
	return weeklyCapacity - nonProjectHours
}

// UtilizationPct berechnet allocated / effective × 100.
// Eine effektive Kapazität ≤ 0 ist ein Datenqualitätsproblem; sie wird als 0 %
// gemeldet statt eine Division durch Null zu riskieren.
func UtilizationPct(allocated, weeklyCapacity, nonProjectHours float64) float64 {
	effective := EffectiveCapacity(weeklyCapacity, nonProjectHours)
	if effective <= 0 {
		return 0
	}
	return allocated / effective * 100
}

// SeverityFor ordnet eine Auslastung ihrem Schwellwert-Bucket zu.
// Ein Wert genau auf der Schwelle gehört zum höheren Bucket.
func SeverityFor(utilizationPct float64) entity.SeverityTier {
	switch {
	case utilizationPct >= 120:
		return entity.TierOverallocated
	case utilizationPct >= 100:
		return entity.TierCritical
	case utilizationPct >= 90:
		return entity.TierWarning
	case utilizationPct >= 75:
		return entity.TierInfo
	default:
		return entity.TierOk
	}
}

// AllocatedHoursForWeek summiert die wirksamen Stunden aller aktiven
// Allokationen, die die ISO-Woche schneiden. Wochen-Overrides ersetzen die
// Basisstunden, sie addieren sich nicht.
func AllocatedHoursForWeek(allocations []entity.AllocationEntity, isoWeek string) float64 {
	var sum float64
	for _, a := range allocations {
		if a.Status != entity.AllocationActive {
			continue
		}
		if !utils.OverlapsWeek(a.StartDate, a.EndDate, isoWeek) {
			continue
		}
		sum += a.HoursForWeek(isoWeek)
	}
	return sum
}

// TrendSlope ist die Kleinste-Quadrate-Steigung über die letzten vier Punkte
// der Serie (x = 0..3). Kürzere Serien verwenden alle vorhandenen Punkte;
// unter zwei Punkten ist die Steigung 0.
func TrendSlope(series []float64) float64 {
	n := len(series)
	if n > 4 {
		series = series[n-4:]
		n = 4
	}
	if n < 2 {
		return 0
	}

	var sumX, sumY float64
	for i, y := range series {
		sumX += float64(i)
		sumY += y
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, den float64
	for i, y := range series {
		dx := float64(i) - meanX
		num += dx * (y - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// DaysToConflict projiziert, in wie vielen Tagen die Durchschnittsauslastung
// die 100 %-Marke kreuzt. Steigung ist pro Woche, daher × 7.
// Rückgabe nil, wenn die Steigung nicht positiv ist und kein Konflikt besteht.
func DaysToConflict(current, slope float64) *int {
	if current >= 100 {
		zero := 0
		return &zero
	}
	if slope <= 0 {
		return nil
	}
	days := int(math.Ceil((100 - current) / slope * 7))
	return &days
}

// AccuracyPct ist 100 minus der mittleren absoluten Prozentabweichung von
// gebuchten zu geplanten Stunden, auf 0 gedeckelt. Wochen ohne geplante
// Stunden liefern keinen Messpunkt.
func AccuracyPct(samples []PlannedVsLogged) (*float64, int) {
	var totalDev float64
	count := 0
	for _, s := range samples {
		if s.Planned <= 0 {
			continue
		}
		totalDev += math.Abs(s.Logged-s.Planned) / s.Planned * 100
		count++
	}
	if count == 0 {
		return nil, 0
	}
	accuracy := math.Max(0, 100-totalDev/float64(count))
	return &accuracy, count
}

// PlannedVsLogged ist ein Messpunkt der Forecast-Genauigkeit:
// geplante vs. gebuchte Stunden einer Allokations-Woche.
type PlannedVsLogged struct {
	Planned float64
	Logged  float64
}

// BalancePoints belohnt eine Auslastung nahe am 85 %-Sweet-Spot:
// 100 − |util − 85| × 2, auf 0 gedeckelt.
func BalancePoints(utilizationPct float64) float64 {
	return math.Max(0, 100-math.Abs(utilizationPct-85)*2)
}

// DisciplinePoints misst die Buchungsdisziplin: gebuchte / geplante Stunden
// × 100, auf 100 gedeckelt. Ohne geplante Stunden gibt es keine Punkte.
func DisciplinePoints(logged, allocated float64) float64 {
	if allocated <= 0 {
		return 0
	}
	return math.Min(100, logged/allocated*100)
}

// GamifiedScore gewichtet Balance 60/40 gegen Disziplin.
func GamifiedScore(balance, discipline float64) int {
	return int(math.Round(0.6*balance + 0.4*discipline))
}

// BadgeFor vergibt das Abzeichen zum Score.
func BadgeFor(score int) string {
	switch {
	case score >= 90:
		return "Kapazitäts-Meister"
	case score >= 75:
		return "Planprofi"
	case score >= 50:
		return "Solide"
	default:
		return "Einsteiger"
	}
}
