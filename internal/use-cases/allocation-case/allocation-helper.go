package allocation_case

import (
	"sort"

	allocation_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/allocation-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
)

// maxWarningWeeks deckelt den Prüfhorizont offener Allokationen.
const maxWarningWeeks = 26

func isValidWeekKey(week string) bool {
	return utils.IsValidISOWeek(week)
}

// capacityWarnings rechnet für jede Woche im Horizont der Kandidaten-Allokation
// die Auslastung der Ressource aus Bestand + Kandidat und meldet Wochen über
// der Schwelle. Reine Warnung: die Stunden bleiben unangetastet.
func (s *AllocationService) capacityWarnings(resource *entity.ResourceEntity, existing []entity.AllocationEntity, candidate *entity.AllocationEntity) []allocation_dto.CapacityWarning {
	effective := resource.WeeklyCapacityHours - s.nonProjectHours
	if effective <= 0 {
		return nil
	}

	weeks := candidateWeeks(candidate)

	var warnings []allocation_dto.CapacityWarning
	for _, week := range weeks {
		total := candidate.HoursForWeek(week)
		for i := range existing {
			a := &existing[i]
			if a.Status != entity.AllocationActive {
				continue
			}
			if !utils.OverlapsWeek(a.StartDate, a.EndDate, week) {
				continue
			}
			total += a.HoursForWeek(week)
		}

		util := total / effective * 100
		if util < s.clampThresholdPct {
			continue
		}
		warnings = append(warnings, allocation_dto.CapacityWarning{
			Week:           week,
			UtilizationPct: util,
			Threshold:      s.clampThresholdPct,
			MessageKey:     "allocation.over_threshold",
		})
	}
	return warnings
}

// candidateWeeks liefert die zu prüfenden ISO-Wochen: den Laufzeitbereich der
// Allokation (gedeckelt) plus alle Override-Wochen, aufsteigend und ohne
// Duplikate.
func candidateWeeks(candidate *entity.AllocationEntity) []string {
	seen := make(map[string]struct{})

	n := maxWarningWeeks
	if candidate.EndDate != nil {
		span := int(candidate.EndDate.Sub(candidate.StartDate).Hours()/(24*7)) + 1
		if span < n {
			n = span
		}
	}
	for _, week := range utils.WeeksFrom(candidate.StartDate, n) {
		seen[week] = struct{}{}
	}
	for week := range candidate.WeeklyAllocations {
		seen[week] = struct{}{}
	}

	weeks := make([]string, 0, len(seen))
	for week := range seen {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)
	return weeks
}
