package routers

import (
	rbac_handlers "github.com/Xenn-00/kapazitaets-meister/internal/handlers/rbac"
	"github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	"github.com/Xenn-00/kapazitaets-meister/internal/middleware"
	rbac_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/rbac-case"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RbacRouter: sämtliche Verwaltungsrouten verlangen rbac:manage.
func RbacRouter(api fiber.Router, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, rbac rbac_case.RbacServiceContract) {
	r := api.Group("/rbac",
		middleware.AuthMiddleware(paseto, redis),
		middleware.RequirePermission(rbac, "rbac:manage"),
	)
	rbacHandler := rbac_handlers.NewRbacHandler(rbac, i18n)

	r.Post("/roles", rbacHandler.CreateRole)
	r.Get("/roles", rbacHandler.ListRoles)
	r.Patch("/roles/:role_id", rbacHandler.UpdateRole)
	r.Delete("/roles/:role_id", rbacHandler.DeleteRole)
	r.Put("/roles/:role_id/permissions", rbacHandler.ReplaceRolePermissions)

	r.Get("/permissions", rbacHandler.ListPermissions)

	r.Post("/users/:user_id/roles", rbacHandler.AssignUserRole)
	r.Delete("/users/:user_id/roles/:role_id", rbacHandler.RemoveUserRole)
	r.Post("/users/:user_id/permissions", rbacHandler.GrantUserPermission)
	r.Delete("/users/:user_id/permissions/:permission_id", rbacHandler.RevokeUserPermission)
	r.Get("/users/:user_id/effective", rbacHandler.GetEffectivePermissions)
}
