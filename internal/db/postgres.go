package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// ConnectPool richtet den Verbindungs-Pool zur Postgres-Datenbank ein.
func ConnectPool(dsn string) *pgxpool.Pool {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Err(err).Msg("Fehler beim Parsen der Datenbank-DSN")
		return nil
	}

	cfg.MaxConns = 20
	cfg.MinConns = 5
	cfg.MaxConnIdleTime = time.Hour
	cfg.HealthCheckPeriod = time.Minute * 5

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Err(err).Msg("Fehler beim Erstellen des Datenbank-Pools")
		return nil
	}

	return pool
}
