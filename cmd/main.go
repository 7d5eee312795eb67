/*
file: respkv/cmd/main.go
*/
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kprasad-dev/respkv/internal/common"
	"github.com/kprasad-dev/respkv/internal/keyspace"
	"github.com/kprasad-dev/respkv/internal/server"
	"github.com/kprasad-dev/respkv/internal/snapshot"
)

var logger = common.NewLogger()

const listenAddr = "127.0.0.1:6379"

func main() {
	logger.Info(">>>> respkv server starting <<<<\n")

	cfg := common.ParseArgs(os.Args[1:], logger)
	logger.Info("dir=%s dbfilename=%s\n", cfg.Dir, cfg.DbFilename)

	ks := keyspace.New()
	loadSnapshot(ks, cfg)

	ctx := common.NewContext(ks, cfg)
	srv := server.New(ctx, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Warn("signal received, shutting down\n")
		srv.Shutdown()
	}()

	if err := srv.Serve(listenAddr); err != nil {
		logger.Error("listen failed on %s: %v\n", listenAddr, err)
		os.Exit(1)
	}

	logger.Info("shutdown complete\n")
}

func loadSnapshot(ks *keyspace.Keyspace, cfg *common.Config) {
	path := cfg.SnapshotPath()
	entries, err := snapshot.Load(path, time.Now())
	if err != nil {
		logger.Warn("snapshot not loaded from %s: %v\n", path, err)
		return
	}
	for _, e := range entries {
		ks.LoadString(e.Key, e.Value, e.ExpiresAt)
	}
	logger.Info("loaded %d keys from snapshot %s\n", len(entries), path)
}
