package routers

import (
	project_handlers "github.com/Xenn-00/kapazitaets-meister/internal/handlers/project"
	"github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	"github.com/Xenn-00/kapazitaets-meister/internal/middleware"
	rbac_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/rbac-case"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func ProjectRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, rbac rbac_case.RbacServiceContract) {
	r := api.Group("/projects", middleware.AuthMiddleware(paseto, redis))
	projectHandler := project_handlers.NewProjectHandler(db, i18n)

	r.Post("/", middleware.RequirePermission(rbac, "project:write"), projectHandler.CreateProject)
	r.Get("/", middleware.RequirePermission(rbac, "project:read"), projectHandler.ListProjects)
	r.Get("/:project_id", middleware.RequirePermission(rbac, "project:read"), projectHandler.GetProjectDetail)
	r.Patch("/:project_id", middleware.RequirePermission(rbac, "project:write"), projectHandler.UpdateProject)
	r.Delete("/:project_id", middleware.RequirePermission(rbac, "project:write"), projectHandler.DeleteProject)
}
