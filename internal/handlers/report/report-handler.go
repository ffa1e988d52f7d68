package report_handlers

import (
	"fmt"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	report_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/report-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/Xenn-00/kapazitaets-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	"github.com/Xenn-00/kapazitaets-meister/internal/queue"
	report_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/report-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportHandler struct {
	validator *validator.Validate
	service   report_case.ReportServiceContract
	i18n      internal_i18n.Service
}

func NewReportHandler(db *pgxpool.Pool, taskQueue queue.TaskQueueClient, i18n *internal_i18n.I18nService, cfg *config.AppConfig) *ReportHandler {
	return &ReportHandler{
		validator: validator.New(),
		service:   report_case.NewReportService(db, taskQueue, cfg),
		i18n:      i18n,
	}
}

// GetUtilizationCSV streamt den Auslastungsreport als CSV-Download.
func (h *ReportHandler) GetUtilizationCSV(c *fiber.Ctx) error {
	var query report_dto.UtilizationCSVQuery
	if err := c.QueryParser(&query); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(query); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	csvData, err := h.service.BuildUtilizationCSV(c.Context(), query.From, query.To)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("utilization-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Status(fiber.StatusOK).Send(csvData)
}

// EnqueueWeeklyReport reiht den Report der Vorwoche ein; der Versand erfolgt
// per E-Mail an den angemeldeten Benutzer.
func (h *ReportHandler) EnqueueWeeklyReport(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	resp, err := h.service.EnqueueWeeklyReport(c.Context(), email)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_enqueue_weekly_report", nil), resp, reqID)
	if err := c.Status(fiber.StatusAccepted).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// EnqueueAlertDigest reiht den Kapazitäts-Digest manuell ein, ohne auf den
// Montags-Cron zu warten.
func (h *ReportHandler) EnqueueAlertDigest(c *fiber.Ctx) error {
	resp, err := h.service.EnqueueAlertDigest(c.Context())
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_enqueue_alert_digest", nil), resp, reqID)
	if err := c.Status(fiber.StatusAccepted).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
