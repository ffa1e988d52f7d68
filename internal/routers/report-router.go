package routers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	report_handlers "github.com/Xenn-00/kapazitaets-meister/internal/handlers/report"
	"github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	"github.com/Xenn-00/kapazitaets-meister/internal/middleware"
	"github.com/Xenn-00/kapazitaets-meister/internal/queue"
	rbac_case "github.com/Xenn-00/kapazitaets-meister/internal/use-cases/rbac-case"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func ReportRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, rbac rbac_case.RbacServiceContract, taskQueue queue.TaskQueueClient, cfg *config.AppConfig) {
	r := api.Group("/reports", middleware.AuthMiddleware(paseto, redis))
	reportHandler := report_handlers.NewReportHandler(db, taskQueue, i18n, cfg)

	redisAddr := strings.Split(redis.Options().Addr, ":")
	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     redisAddr[0],
		Password: redis.Options().Password,
		Port:     6379,
		Database: 1,
	})

	reportLimiter := func(max int, window time.Duration) fiber.Handler {
		return limiter.New(limiter.Config{
			Max:        max,
			Expiration: window,
			KeyGenerator: func(c *fiber.Ctx) string {
				userID := c.Locals("user_id")
				if userID == nil {
					return "report:ip:" + c.IP()
				}
				return fmt.Sprintf("report:%v:%s", userID, c.Path())
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"status": "error",
					"error":  "too_many_request",
				})
			},
			Storage: redisStore,
		})
	}

	r.Get("/utilization.csv", middleware.RequirePermission(rbac, "report:export"), reportLimiter(10, time.Minute), reportHandler.GetUtilizationCSV)
	r.Post("/weekly", middleware.RequirePermission(rbac, "report:export"), reportLimiter(3, time.Hour), reportHandler.EnqueueWeeklyReport)
	r.Post("/alert-digest", middleware.RequirePermission(rbac, "report:export"), reportLimiter(3, time.Hour), reportHandler.EnqueueAlertDigest)
}
