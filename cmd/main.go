package main

// Package main ist der Einstiegspunkt der Anwendung "kapazitaets-meister".
// Es verantwortet das Laden der Konfiguration, die Initialisierung der
// Datenbankverbindung und des Paseto-Tokenmakers, das Aufsetzen der Fiber-API
// mit Middleware und Routern sowie das Starten des HTTP-Servers.

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xenn-00/kapazitaets-meister/internal/config"
	"github.com/Xenn-00/kapazitaets-meister/internal/db"
	"github.com/Xenn-00/kapazitaets-meister/internal/i18n"
	"github.com/Xenn-00/kapazitaets-meister/internal/middleware"
	"github.com/Xenn-00/kapazitaets-meister/internal/queue"
	"github.com/Xenn-00/kapazitaets-meister/internal/routers"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main initialisiert alle benötigten Ressourcen für den HTTP-Server und stellt sicher,
// dass bei Beendigung sauber heruntergefahren und aufgeräumt wird.
func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	// 0. I18N Einführung
	i18nSvc := i18n.NewInitI18nService()
	// 1. Konfiguration laden (config.LoadConfig).
	cfg := config.LoadConfig()
	// 2. Postgres-Verbindungs-Pool (db.ConnectPool) und Redis-Verbindungs-Pool erstellen.
	dbPool := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err)
	}
	// 3. Paseto-Maker initialisieren (utils.NewPasetoMaker).
	paseto, err := utils.NewPasetoMaker(cfg.APP_SECRET.Paseto.HexKey)
	if err != nil {
		log.Fatal().Err(err)
	}

	// 4. Task-Queue-Client für asynchrone Reports (asynq über Redis).
	taskQueue := queue.NewTaskQueue(redisPool)

	// 5. Fiber-App mit ErrorHandler, RequestID- und Logger-Middleware erstellen.
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	// 6. Applikationsrouten registrieren (routers.SetupRoutes).
	routers.SetupRoutes(app, dbPool, redisPool, i18nSvc, paseto, taskQueue, cfg)

	go func() {
		// 7. HTTP-Server starten (blocking, daher in einer Goroutine).
		log.Info().Msgf("Starte %s auf Port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("Server ordnungsgemäß herunterfahren.")
			} else {
				log.Fatal().Err(err).Msgf("Der Server konnte nicht gestartet werden, %v", err)
			}
		}
	}()

	// 8. Graceful Shutdown bei SIGINT/SIGTERM: Pools schließen, Fiber herunterfahren.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("Redis-Pool erfolgreich geschlossen.")
	}

	if dbPool != nil {
		dbPool.Close()
		log.Info().Msg("DB-Pool erfolgreich geschlossen.")
	}

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msgf("Beim Herunterfahren ist ein Fehler aufgtreten: %v", err)
	}
	log.Info().Msg("Server ordnungsgemäß herunterfahren.")
}
