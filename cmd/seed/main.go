package main

import (
	"context"
	"fmt"
	"os"

	"fomo-seed/internal/config"
	"fomo-seed/internal/observability"
	"fomo-seed/internal/seed"
	"fomo-seed/internal/store"
)

func main() {
	os.Exit(run())
}

// run carries the whole migration so deferred cleanup fires before the
// process exit code is set.
func run() int {
	// MONGO_URL defaults to mongodb://localhost:27017; override via env.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid environment:", err)
		return 2
	}

	log := observability.NewLogger(cfg.LogLevel)
	log.Info("starting data migration", "url", cfg.MongoURL, "db", cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	defer cancel()

	st, err := store.Connect(ctx, cfg, log)
	if err != nil {
		log.Error("mongo connect failed", "err", err)
		return 1
	}
	defer func() {
		if cerr := st.Close(context.Background()); cerr != nil {
			log.Error("mongo close error", "err", cerr)
		}
	}()

	runner := seed.NewRunner(st.RoadmapTasks(), st.TeamMembers(), st.PlatformSettings(), log)
	sum, err := runner.Run(ctx)
	if err != nil {
		log.Error("migration failed", "err", err)
		return 1
	}

	log.Info("migration completed",
		"roadmap_inserted", sum.RoadmapInserted,
		"roadmap_existing", sum.RoadmapExisting,
		"team_inserted", sum.TeamInserted,
		"team_existing", sum.TeamExisting,
		"settings_found", sum.SettingsFound,
		"settings_modules", sum.SettingsModules,
	)
	return 0
}
