package timeentry_handlers

import (
	allocation_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/allocation-dto"
	resource_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/resource-dto"
	timeentry_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/timeentry-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/Xenn-00/kapazitaets-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	timeentry_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/timeentry-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TimeEntryHandler struct {
	validator *validator.Validate
	service   timeentry_case.TimeEntryServiceContract
	i18n      internal_i18n.Service
}

func NewTimeEntryHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *TimeEntryHandler {
	validate := validator.New()
	validate.RegisterValidation("isoWeek", allocation_dto.IsValidISOWeek)
	return &TimeEntryHandler{
		validator: validate,
		service:   timeentry_case.NewTimeEntryService(db),
		i18n:      i18n,
	}
}

// UpsertTimeEntry ersetzt die Tagesstunden der Allokations-Woche komplett.
func (h *TimeEntryHandler) UpsertTimeEntry(c *fiber.Ctx) error {
	var param allocation_dto.ParamAllocationWeek
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	var req timeentry_dto.UpsertTimeEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpsertTimeEntry(c.Context(), param.ID, param.Week, &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_upsert_time_entry", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *TimeEntryHandler) ListByAllocation(c *fiber.Ctx) error {
	var param allocation_dto.ParamAllocationID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListByAllocation(c.Context(), param.ID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_time_entries", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *TimeEntryHandler) ListByResourceRange(c *fiber.Ctx) error {
	var param resource_dto.ParamResourceID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	var query timeentry_dto.RangeQuery
	if err := c.QueryParser(&query); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(query); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListByResourceRange(c.Context(), param.ID, query.From, query.To)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_time_entries", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
