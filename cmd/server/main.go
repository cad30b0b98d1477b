package main

import (
	"database/sql"
	"grid-route-client/internal/adapters/history"
	"grid-route-client/internal/adapters/routing"
	"grid-route-client/internal/api"
	"grid-route-client/internal/config"
	"grid-route-client/internal/platform/db"
	"grid-route-client/internal/platform/obs"
	"grid-route-client/internal/ports"
	"net/http"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It builds the single RouteClient, the optional route history log, and
// starts the gateway HTTP server.
func main() {
	if !config.LoadDotEnv() {
		obs.Logger().Info("no .env file found (using environment variables)")
	}

	cfg, err := config.Load(os.Getenv("ROUTING_CONFIG"))
	if err != nil {
		obs.Logger().Fatal("load config", "err", err)
	}
	obs.Logger().SetLevel(obs.ParseLevel(cfg.LogLevel))

	// Timeout 0 leaves requests bounded only by the caller's context.
	client, err := routing.NewRouteClient(
		cfg.BaseURL,
		routing.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	)
	if err != nil {
		obs.Logger().Fatal("build route client", "err", err)
	}

	var routeLog ports.RouteLog
	if cfg.HistoryDriver != "" {
		conn, err := openHistory(cfg.HistoryDriver, cfg.HistoryDSN)
		if err != nil {
			obs.Logger().Fatal("open route history", "driver", cfg.HistoryDriver, "err", err)
		}
		defer conn.Close()

		if err := history.InitSchema(conn); err != nil {
			obs.Logger().Fatal("init route history", "err", err)
		}

		if cfg.HistoryDriver == "pgx" {
			routeLog = history.NewSQLRouteLog(conn)
		} else {
			routeLog = history.NewSqliteRouteLog(conn)
		}
	}

	router := api.NewRouter(client, routeLog)

	obs.Logger().Info("server listening", "addr", ":"+cfg.Port, "backend", client.BaseURL(), "history", cfg.HistoryDriver)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		obs.Logger().Fatal("server stopped", "err", err)
	}
}

func openHistory(driver, dsn string) (*sql.DB, error) {
	if driver == "pgx" {
		return db.Open(dsn)
	}
	return db.OpenSqlite(dsn)
}
