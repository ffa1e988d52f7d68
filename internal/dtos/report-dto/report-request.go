package report_dto

import "time"

type UtilizationCSVQuery struct {
	From time.Time `query:"from" validate:"required"`
	To   time.Time `query:"to" validate:"required"`
}

type AlertDigestResponse struct {
	Enqueued bool `json:"enqueued"`
}

type WeeklyReportResponse struct {
	// Enqueued bestätigt, dass der Report-Job in der Queue liegt;
	// der Versand erfolgt asynchron per E-Mail.
	Enqueued bool   `json:"enqueued"`
	Week     string `json:"week"`
	Email    string `json:"email"`
}
