package rbac_handlers

import (
	rbac_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/rbac-dto"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	"github.com/Xenn-00/kapazitaets-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	rbac_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/rbac-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RbacHandler teilt sich die Service-Instanz mit der Permission-Middleware,
// damit beide denselben Redis-Cache der effektiven Berechtigungen sehen.
type RbacHandler struct {
	validator *validator.Validate
	service   rbac_case.RbacServiceContract
	i18n      internal_i18n.Service
}

func NewRbacHandler(service rbac_case.RbacServiceContract, i18n *internal_i18n.I18nService) *RbacHandler {
	return &RbacHandler{
		validator: validator.New(),
		service:   service,
		i18n:      i18n,
	}
}

func (h *RbacHandler) CreateRole(c *fiber.Ctx) error {
	var req rbac_dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.CreateRole(c.Context(), &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_role", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *RbacHandler) ListRoles(c *fiber.Ctx) error {
	resp, err := h.service.ListRoles(c.Context())
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_roles", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *RbacHandler) UpdateRole(c *fiber.Ctx) error {
	var param rbac_dto.ParamRoleID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	var req rbac_dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.UpdateRole(c.Context(), param.ID, &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_role", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *RbacHandler) DeleteRole(c *fiber.Ctx) error {
	var param rbac_dto.ParamRoleID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	if err := h.service.DeleteRole(c.Context(), param.ID); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_delete_role", nil), rbac_dto.MutationResponse{Ok: true}, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *RbacHandler) ListPermissions(c *fiber.Ctx) error {
	resp, err := h.service.ListPermissions(c.Context())
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_permissions", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// ReplaceRolePermissions ersetzt die Berechtigungsmenge der Rolle atomar.
func (h *RbacHandler) ReplaceRolePermissions(c *fiber.Ctx) error {
	var param rbac_dto.ParamRoleID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	var req rbac_dto.ReplaceRolePermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	if err := h.service.ReplaceRolePermissions(c.Context(), param.ID, &req); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_replace_role_permissions", nil), rbac_dto.MutationResponse{Ok: true}, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *RbacHandler) AssignUserRole(c *fiber.Ctx) error {
	actorID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	var param rbac_dto.ParamUserID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	var req rbac_dto.AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	if err := h.service.AssignUserRole(c.Context(), param.ID, req.RoleID, actorID); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_assign_role", nil), rbac_dto.MutationResponse{Ok: true}, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *RbacHandler) RemoveUserRole(c *fiber.Ctx) error {
	var param rbac_dto.ParamUserRole
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	if err := h.service.RemoveUserRole(c.Context(), param.UserID, param.RoleID); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_remove_role", nil), rbac_dto.MutationResponse{Ok: true}, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *RbacHandler) GrantUserPermission(c *fiber.Ctx) error {
	actorID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	var param rbac_dto.ParamUserID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	var req rbac_dto.GrantPermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	if err := h.service.GrantUserPermission(c.Context(), param.ID, req.PermissionID, actorID); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_grant_permission", nil), rbac_dto.MutationResponse{Ok: true}, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *RbacHandler) RevokeUserPermission(c *fiber.Ctx) error {
	var param rbac_dto.ParamUserPermission
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	if err := h.service.RevokeUserPermission(c.Context(), param.UserID, param.PermissionID); err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_revoke_permission", nil), rbac_dto.MutationResponse{Ok: true}, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// GetEffectivePermissions liefert die aufgelöste Berechtigungsmenge eines Benutzers.
func (h *RbacHandler) GetEffectivePermissions(c *fiber.Ctx) error {
	var param rbac_dto.ParamUserID
	if err := c.ParamsParser(&param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := h.validator.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.GetEffectivePermissions(c.Context(), param.ID)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_fetch_effective_permissions", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
