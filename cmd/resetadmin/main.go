// Command resetadmin sets the first admin's username and password, creating
// an admin account when none exists.
//
//	resetadmin <username> <password>
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tour-booking/internal/handler/middleware"
	"tour-booking/internal/infra/db"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/infra/uow"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/usecase/commands"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: resetadmin <username> <password>")
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		slog.Error("reset admin failed", "error", err)
		os.Exit(1)
	}
}

func run(username, password string) error {
	middleware.NewLogger(config.LogConfig{Level: "info", TimeZone: "UTC", TimeFormat: time.RFC3339})

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admins := commands.NewAdminCommands(uow.NewPostgresUoW(pool, sqlc.New()), clock.NewRealClock())
	res, err := admins.ResetAdmin(ctx, username, password)
	if err != nil {
		return err
	}

	if res.Created {
		fmt.Printf("created admin %s (%s)\n", res.Email, res.UserID)
	} else {
		fmt.Printf("updated admin %s (%s)\n", res.Email, res.UserID)
	}
	return nil
}
