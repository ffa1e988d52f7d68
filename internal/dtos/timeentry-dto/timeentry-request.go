package timeentry_dto

import "time"

// UpsertTimeEntryRequest setzt die sieben Tagesfelder einer Allokations-Woche.
// Upsert: existiert bereits ein Eintrag für (allocation, week), wird er ersetzt.
type UpsertTimeEntryRequest struct {
	Monday    float64 `json:"monday" validate:"gte=0,max=24"`
	Tuesday   float64 `json:"tuesday" validate:"gte=0,max=24"`
	Wednesday float64 `json:"wednesday" validate:"gte=0,max=24"`
	Thursday  float64 `json:"thursday" validate:"gte=0,max=24"`
	Friday    float64 `json:"friday" validate:"gte=0,max=24"`
	Saturday  float64 `json:"saturday" validate:"gte=0,max=24"`
	Sunday    float64 `json:"sunday" validate:"gte=0,max=24"`
}

type RangeQuery struct {
	From time.Time `query:"from" validate:"required"`
	To   time.Time `query:"to" validate:"required"`
}
