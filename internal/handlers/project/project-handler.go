package project_handlers

import (
	project_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/project-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/Xenn-00/kapazitaets-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	project_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/project-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectHandler struct {
	validator *validator.Validate
	service   project_case.ProjectServiceContract
	i18n      internal_i18n.Service
}

func NewProjectHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *ProjectHandler {
	validate := validator.New()
	validate.RegisterValidation("projectStatus", project_dto.IsValidProjectStatus)
	validate.RegisterValidation("projectPriority", project_dto.IsValidProjectPriority)
	return &ProjectHandler{
		validator: validate,
		service:   project_case.NewProjectService(db),
		i18n:      i18n,
	}
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req project_dto.CreateProjectRequest

	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CreateProject(c.Context(), &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_project", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	var filter project_dto.ListProjectFilter
	if err := c.QueryParser(&filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, total, err := h.service.ListProjects(c.Context(), &filter)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_projects", nil), resp, reqID,
		handlers.NewPaginationMeta(filter.Page, filter.Limit, total))
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *ProjectHandler) GetProjectDetail(c *fiber.Ctx) error {
	var param project_dto.ParamProjectID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.GetProjectDetail(c.Context(), param.ID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_project_detail", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	var param project_dto.ParamProjectID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	var req project_dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateProject(c.Context(), param.ID, &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_project", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// DeleteProject storniert das Projekt und kaskadiert auf aktive Allokationen.
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	var param project_dto.ParamProjectID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.DeleteProject(c.Context(), param.ID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_delete_project", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
