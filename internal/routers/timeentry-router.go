package routers

import (
	timeentry_handlers "github.com/Xenn-00/kapazitaets-meister/internal/handlers/timeentry"
	"github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	"github.com/Xenn-00/kapazitaets-meister/internal/middleware"
	rbac_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/rbac-case"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func TimeEntryRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, rbac rbac_case.RbacServiceContract) {
	r := api.Group("/time-entries", middleware.AuthMiddleware(paseto, redis))
	timeEntryHandler := timeentry_handlers.NewTimeEntryHandler(db, i18n)

	r.Put("/allocations/:allocation_id/weeks/:week", middleware.RequirePermission(rbac, "timesheet:write"), timeEntryHandler.UpsertTimeEntry)
	r.Get("/allocations/:allocation_id", middleware.RequirePermission(rbac, "timesheet:read"), timeEntryHandler.ListByAllocation)
	r.Get("/resources/:resource_id", middleware.RequirePermission(rbac, "timesheet:read"), timeEntryHandler.ListByResourceRange)
}
