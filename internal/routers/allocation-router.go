package routers

import (
	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	allocation_handlers "github.com/Xenn-00/kapazitaets-meister/internal/handlers/allocation"
	"github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	"github.com/Xenn-00/kapazitaets-meister/internal/middleware"
	rbac_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/rbac-case"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func AllocationRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, rbac rbac_case.RbacServiceContract, cfg *config.AppConfig) {
	r := api.Group("/allocations", middleware.AuthMiddleware(paseto, redis))
	allocationHandler := allocation_handlers.NewAllocationHandler(db, i18n, cfg)

	r.Post("/", middleware.RequirePermission(rbac, "allocation:write"), allocationHandler.CreateAllocation)
	r.Get("/resource/:resource_id", middleware.RequirePermission(rbac, "allocation:read"), allocationHandler.ListByResource)
	r.Get("/project/:project_id", middleware.RequirePermission(rbac, "allocation:read"), allocationHandler.ListByProject)
	r.Get("/:allocation_id", middleware.RequirePermission(rbac, "allocation:read"), allocationHandler.GetAllocation)
	r.Patch("/:allocation_id", middleware.RequirePermission(rbac, "allocation:write"), allocationHandler.UpdateAllocation)
	r.Put("/:allocation_id/weeks/:week", middleware.RequirePermission(rbac, "allocation:write"), allocationHandler.SetWeekOverride)
	r.Delete("/:allocation_id", middleware.RequirePermission(rbac, "allocation:write"), allocationHandler.CancelAllocation)
}
