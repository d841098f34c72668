package main

import (
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	"github.com/IhaveDebt/smallworld/api/proto/annpb"
	"github.com/IhaveDebt/smallworld/internal/config"
	"github.com/IhaveDebt/smallworld/internal/index"
	"github.com/IhaveDebt/smallworld/internal/metrics"
	"github.com/IhaveDebt/smallworld/internal/server"
	"github.com/IhaveDebt/smallworld/internal/storage"
	"github.com/IhaveDebt/smallworld/pkg/vec"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting smallworld",
		"listen_addr", cfg.ListenAddr,
		"metrics_addr", cfg.MetricsAddr,
		"wal_path", cfg.WALPath,
		"m", cfg.Index.M,
		"ef_search", cfg.Index.EfSearch,
	)

	idx := index.NewSmallWorld(index.Config{
		M:        cfg.Index.M,
		EfSearch: cfg.Index.EfSearch,
		Seed:     cfg.Index.Seed,
	})

	wal, err := storage.OpenWAL(cfg.WALPath)
	if err != nil {
		slog.Error("failed to open WAL", "path", cfg.WALPath, "error", err)
		os.Exit(1)
	}
	defer wal.Close()

	// Replaying in file order reproduces the original dense id assignment.
	count := 0
	err = wal.Replay(func(v vec.Vector) {
		if _, addErr := idx.Add(v); addErr != nil {
			slog.Warn("replay insert skipped", "record", count, "error", addErr)
		}
		count++
	})
	if err != nil {
		slog.Error("WAL replay failed", "error", err)
		os.Exit(1)
	}
	slog.Info("restored vectors from WAL", "count", idx.Len())
	metrics.IndexedVectors.Set(float64(idx.Len()))

	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
			slog.Error("metrics listener failed", "error", err)
		}
	}()

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		slog.Error("failed to listen", "addr", cfg.ListenAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	annpb.RegisterVectorServiceServer(grpcServer, server.NewServer(idx, wal))

	slog.Info("engine ready", "addr", cfg.ListenAddr)
	if err := grpcServer.Serve(lis); err != nil {
		slog.Error("serve failed", "error", err)
		os.Exit(1)
	}
}
