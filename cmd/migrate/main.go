// Command migrate applies migrations/ to the configured database using the
// atlas CLI. Run `atlas migrate hash` after editing a migration file.
//
//	migrate [-dir file://migrations] [-status]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tour-booking/internal/handler/middleware"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	statusOnly := flag.Bool("status", false, "print migration status without applying")
	flag.Parse()

	if err := run(*dir, *bin, *statusOnly); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}

func run(dirURL, atlasBin string, statusOnly bool) error {
	middleware.NewLogger(config.LogConfig{Level: "info", TimeZone: "UTC", TimeFormat: time.RFC3339})

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(".", atlasBin)
	if err != nil {
		return errs.Wrap(err, "failed to init atlas client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if statusOnly {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    dbCfg.BuildDSN(),
			DirURL: dirURL,
		})
		if err != nil {
			return errs.Wrap(err, "failed to read migration status")
		}
		fmt.Printf("status=%s current=%s next=%s pending=%d\n", st.Status, st.Current, st.Next, len(st.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: dirURL,
	})
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
