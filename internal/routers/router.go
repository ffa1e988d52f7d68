package routers

import (
	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	"github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	"github.com/Xenn-00/kapazitaets-meister/internal/queue"
	rbac_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/rbac-case"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupRoutes richtet die API-Routen ein. Der RBAC-Service wird einmal gebaut
// und an Handler und Permission-Middleware geteilt, damit beide denselben
// Redis-Cache der effektiven Berechtigungen sehen.
func SetupRoutes(app *fiber.App, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, taskQueue queue.TaskQueueClient, cfg *config.AppConfig) {
	api := app.Group("/api/v1")

	rbacService := rbac_case.NewRbacService(db, redis)

	AuthRouter(api, db, redis, i18n, paseto)
	ResourceRouter(api, db, redis, i18n, paseto, rbacService)
	ProjectRouter(api, db, redis, i18n, paseto, rbacService)
	AllocationRouter(api, db, redis, i18n, paseto, rbacService, cfg)
	TimeEntryRouter(api, db, redis, i18n, paseto, rbacService)
	DashboardRouter(api, db, redis, i18n, paseto, rbacService, cfg)
	ReportRouter(api, db, redis, i18n, paseto, rbacService, taskQueue, cfg)
	RbacRouter(api, redis, i18n, paseto, rbacService)
	HealthRouter(api, db, redis)
}
