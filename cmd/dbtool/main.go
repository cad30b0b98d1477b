package main

import (
	"grid-route-client/internal/adapters/history"
	"grid-route-client/internal/config"
	"grid-route-client/internal/platform/db"
	"grid-route-client/internal/platform/obs"
	"strings"
)

// dbtool prepares a PostgreSQL database for the gateway's route history.
func main() {
	if !config.LoadDotEnv() {
		obs.Logger().Info("no .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", config.Get("HISTORY_DSN", ""))
	if strings.TrimSpace(databaseURL) == "" {
		obs.Logger().Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		obs.Logger().Fatal("open database", "err", err)
	}
	defer conn.Close()

	obs.Logger().Info("initializing route history schema")
	if err := history.InitSchema(conn); err != nil {
		obs.Logger().Fatal("schema initialization failed", "err", err)
	}
	obs.Logger().Info("schema ready")
}
