package routers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	dashboard_handlers "github.com/Xenn-00/kapazitaets-meister/internal/handlers/dashboard"
	"github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	"github.com/Xenn-00/kapazitaets-meister/internal/middleware"
	rbac_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/rbac-case"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func DashboardRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, rbac rbac_case.RbacServiceContract, cfg *config.AppConfig) {
	r := api.Group("/dashboard",
		middleware.AuthMiddleware(paseto, redis),
		middleware.RequirePermission(rbac, "dashboard:view"),
	)
	dashboardHandler := dashboard_handlers.NewDashboardHandler(db, redis, i18n, cfg)

	// prepare redis storage for rate limiter fiber
	redisAddr := strings.Split(redis.Options().Addr, ":")
	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     redisAddr[0],
		Password: redis.Options().Password,
		Port:     6379,
		Database: 1,
	})

	// Trends und Forecast rechnen über viele Wochen; pro Benutzer drosseln.
	heavy := limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			userID := c.Locals("user_id")
			if userID == nil {
				return "dashboard:ip:" + c.IP()
			}
			return fmt.Sprintf("dashboard:%v:%s", userID, c.Path())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "too_many_request",
			})
		},
		Storage: redisStore,
	})

	r.Get("/kpis", dashboardHandler.GetKpis)
	r.Get("/alerts", dashboardHandler.GetAlerts)
	r.Get("/heatmap", heavy, dashboardHandler.GetHeatmap)
	r.Get("/gamified", dashboardHandler.GetGamified)
	r.Get("/trends", heavy, dashboardHandler.GetTrends)
	r.Get("/forecast-accuracy", heavy, dashboardHandler.GetForecastAccuracy)
}
