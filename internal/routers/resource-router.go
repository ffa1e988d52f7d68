package routers

import (
	resource_handlers "github.com/Xenn-00/kapazitaets-meister/internal/handlers/resource"
	"github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	"github.com/Xenn-00/kapazitaets-meister/internal/middleware"
	rbac_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/rbac-case"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func ResourceRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, rbac rbac_case.RbacServiceContract) {
	r := api.Group("/resources", middleware.AuthMiddleware(paseto, redis))
	resourceHandler := resource_handlers.NewResourceHandler(db, i18n)

	r.Post("/", middleware.RequirePermission(rbac, "resource:write"), resourceHandler.CreateResource)
	r.Get("/", middleware.RequirePermission(rbac, "resource:read"), resourceHandler.ListResources)
	r.Get("/:resource_id", middleware.RequirePermission(rbac, "resource:read"), resourceHandler.GetResource)
	r.Patch("/:resource_id", middleware.RequirePermission(rbac, "resource:write"), resourceHandler.UpdateResource)
	r.Delete("/:resource_id", middleware.RequirePermission(rbac, "resource:write"), resourceHandler.DeleteResource)
}
