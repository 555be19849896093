// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/minitranslate/vocabsync/internal/adapter"
	"github.com/minitranslate/vocabsync/internal/config"
	"github.com/minitranslate/vocabsync/internal/conflict"
	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/internal/store"
	"github.com/minitranslate/vocabsync/internal/syncer"
	"github.com/minitranslate/vocabsync/internal/tui"
	"github.com/minitranslate/vocabsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("syncd")
	cfg, err := config.GetSyncdConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	tokens := adapter.NewStaticTokenProvider(cfg.Remote.Token)
	clientCfg := adapter.NewHTTPClientConfig(cfg.Remote)
	fast := adapter.NewHTTPFastStore(clientCfg, tokens)
	blobs := adapter.NewHTTPBlobStore(clientCfg, tokens)

	var prompter conflict.Prompter = conflict.HeadlessPrompter{}
	if cfg.Sync.Interactive {
		prompter = tui.NewPrompter()
	}

	resolver := conflict.NewResolver(storages.Preferences, prompter, log)
	if cfg.Sync.Interactive {
		manual := conflict.Manual(prompter)
		resolver.Route(models.ConflictSettings, manual)
		resolver.Route(models.ConflictPreference, manual)
	}

	ctx := context.Background()
	engine := syncer.NewEngine(ctx, syncer.Options{
		Local:        storages.Snapshots,
		History:      storages.History,
		Fast:         fast,
		Blobs:        blobs,
		Tokens:       tokens,
		Resolver:     resolver,
		Config:       cfg.Sync,
		SnapshotName: cfg.Remote.SnapshotName,
		Logger:       log,
	})

	if cfg.Sync.RunOnce {
		result := engine.ForceSync(ctx)
		if !result.Success {
			log.Error().Str("error", string(result.Error)).Msg("sync failed")
			os.Exit(1)
		}
		log.Info().Msg("sync completed")
		return
	}

	scheduler := syncer.NewScheduler(engine)
	scheduler.Start(ctx, cfg.Sync.AutoSyncInterval)

	stopCtx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	<-stopCtx.Done()
	log.Info().Msg("stop signal received")
	scheduler.Stop()
	log.Info().Msg("syncd stopped gracefully")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
