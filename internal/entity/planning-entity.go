package entity

// SeverityTier ist der Schwellwert-Bucket einer Auslastung (75/90/100/120 %).
type SeverityTier string

const (
	TierOk            SeverityTier = "Ok"
	TierInfo          SeverityTier = "Info"
	TierWarning       SeverityTier = "Warning"
	TierCritical      SeverityTier = "Critical"
	TierOverallocated SeverityTier = "Overallocated"
)

// PlanningSnapshot bündelt die Zeilen, aus denen alle Dashboard-Kennzahlen
// berechnet werden: aktive Ressourcen, deren Allokationen und Zeiteinträge.
type PlanningSnapshot struct {
	Resources   []ResourceEntity
	Allocations []AllocationEntity
	TimeEntries []TimeEntryEntity
}

// AllocationsByResource gruppiert die Allokationen des Snapshots nach Ressource.
func (s *PlanningSnapshot) AllocationsByResource() map[string][]AllocationEntity {
	out := make(map[string][]AllocationEntity, len(s.Resources))
	for _, a := range s.Allocations {
		out[a.ResourceID] = append(out[a.ResourceID], a)
	}
	return out
}

// EntriesByAllocation gruppiert die Zeiteinträge des Snapshots nach Allokation.
func (s *PlanningSnapshot) EntriesByAllocation() map[string][]TimeEntryEntity {
	out := make(map[string][]TimeEntryEntity)
	for _, e := range s.TimeEntries {
		out[e.AllocationID] = append(out[e.AllocationID], e)
	}
	return out
}
