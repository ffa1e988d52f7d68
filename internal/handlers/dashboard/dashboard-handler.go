package dashboard_handlers

import (
	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	dashboard_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/dashboard-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/Xenn-00/kapazitaets-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	dashboard_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/dashboard-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// DashboardHandler liefert die Lese-Aggregationen. Die Services degradieren
// bei Datenbankfehlern auf genullte Antworten, ein 5xx entsteht hier nie.
type DashboardHandler struct {
	validator *validator.Validate
	service   dashboard_case.DashboardServiceContract
	i18n      internal_i18n.Service
}

func NewDashboardHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService, cfg *config.AppConfig) *DashboardHandler {
	return &DashboardHandler{
		validator: validator.New(),
		service:   dashboard_case.NewDashboardService(db, redis, cfg),
		i18n:      i18n,
	}
}

func (h *DashboardHandler) GetKpis(c *fiber.Ctx) error {
	resp, err := h.service.GetKpis(c.Context())
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_kpis", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *DashboardHandler) GetAlerts(c *fiber.Ctx) error {
	resp, err := h.service.GetAlerts(c.Context())
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_alerts", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *DashboardHandler) GetHeatmap(c *fiber.Ctx) error {
	var query dashboard_dto.HeatmapQuery
	if err := c.QueryParser(&query); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(query); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.GetHeatmap(c.Context(), query.Weeks)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_heatmap", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *DashboardHandler) GetGamified(c *fiber.Ctx) error {
	resp, err := h.service.GetGamified(c.Context())
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_gamified", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *DashboardHandler) GetTrends(c *fiber.Ctx) error {
	var query dashboard_dto.TrendsQuery
	if err := c.QueryParser(&query); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(query); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.GetTrends(c.Context(), query.Weeks)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_trends", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *DashboardHandler) GetForecastAccuracy(c *fiber.Ctx) error {
	resp, err := h.service.GetForecastAccuracy(c.Context())
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_forecast_accuracy", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
