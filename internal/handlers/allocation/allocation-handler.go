package allocation_handlers

import (
	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	allocation_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/allocation-dto"
	project_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/project-dto"
	resource_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/resource-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/Xenn-00/kapazitaets-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	allocation_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/allocation-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AllocationHandler struct {
	validator *validator.Validate
	service   allocation_case.AllocationServiceContract
	i18n      internal_i18n.Service
}

func NewAllocationHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService, cfg *config.AppConfig) *AllocationHandler {
	validate := validator.New()
	validate.RegisterValidation("allocationStatus", allocation_dto.IsValidAllocationStatus)
	validate.RegisterValidation("isoWeek", allocation_dto.IsValidISOWeek)
	return &AllocationHandler{
		validator: validate,
		service:   allocation_case.NewAllocationService(db, cfg),
		i18n:      i18n,
	}
}

func (h *AllocationHandler) CreateAllocation(c *fiber.Ctx) error {
	var req allocation_dto.CreateAllocationRequest

	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CreateAllocation(c.Context(), &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_allocation", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *AllocationHandler) GetAllocation(c *fiber.Ctx) error {
	var param allocation_dto.ParamAllocationID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.GetAllocation(c.Context(), param.ID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_allocation", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *AllocationHandler) ListByResource(c *fiber.Ctx) error {
	var param resource_dto.ParamResourceID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	var filter allocation_dto.ListAllocationFilter
	if err := c.QueryParser(&filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListByResource(c.Context(), param.ID, filter)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_allocations", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *AllocationHandler) ListByProject(c *fiber.Ctx) error {
	var param project_dto.ParamProjectID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.ListByProject(c.Context(), param.ID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_allocations", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *AllocationHandler) UpdateAllocation(c *fiber.Ctx) error {
	var param allocation_dto.ParamAllocationID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	var req allocation_dto.UpdateAllocationRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateAllocation(c.Context(), param.ID, &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_allocation", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// SetWeekOverride setzt die Stunden einer einzelnen ISO-Woche. Über der
// Warnschwelle liegende Stunden lösen Warnings aus, werden aber nie gekappt.
func (h *AllocationHandler) SetWeekOverride(c *fiber.Ctx) error {
	var param allocation_dto.ParamAllocationWeek
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	var req allocation_dto.SetWeekOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.SetWeekOverride(c.Context(), param.ID, param.Week, &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_set_week_override", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *AllocationHandler) CancelAllocation(c *fiber.Ctx) error {
	var param allocation_dto.ParamAllocationID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CancelAllocation(c.Context(), param.ID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_cancel_allocation", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
