package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"club-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// migrate applies or inspects the versioned SQL migrations with the atlas CLI.
//
//	go run ./cmd/migrate -action apply
//	go run ./cmd/migrate -action status
func main() {
	action := flag.String("action", "apply", "apply | status")
	dir := flag.String("dir", "migrations", "migration directory")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// only the DB section is required here
	var cfg config.DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, *action, *dir, *atlasBin, cfg.BuildDSN()); err != nil {
		slog.Error("migration failed", "action", *action, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, action, dir, atlasBin, dsn string) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return err
	}

	switch action {
	case "apply":
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: dsn})
		if err != nil {
			return err
		}
		slog.Info("migrations applied",
			"count", len(res.Applied),
			"current", res.Current,
			"target", res.Target)
	case "status":
		res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: dsn})
		if err != nil {
			return err
		}
		slog.Info("migration status",
			"status", res.Status,
			"current", res.Current,
			"next", res.Next,
			"pending", len(res.Pending))
	default:
		return errors.New("unknown action " + action)
	}
	return nil
}
