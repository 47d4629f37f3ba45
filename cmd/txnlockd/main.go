package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	pb "github.com/pixperk/txnfence/api/v1"
	"github.com/pixperk/txnfence/pkg/gateway"
	"github.com/pixperk/txnfence/pkg/raft"
	"github.com/pixperk/txnfence/pkg/server"
	"google.golang.org/grpc"
)

func main() {
	var (
		nodeID    = flag.String("node-id", "", "Unique node ID (generates UUID if empty)")
		raftAddr  = flag.String("raft-addr", "127.0.0.1:7000", "Raft bind address")
		grpcAddr  = flag.String("grpc-addr", ":9000", "gRPC server address")
		httpAddr  = flag.String("http-addr", ":8080", "HTTP metrics and status address")
		dataDir   = flag.String("data-dir", "./data", "Data directory for Raft storage")
		bootstrap = flag.Bool("bootstrap", false, "Bootstrap a new cluster")
		logLevel  = flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
		logJSON   = flag.Bool("log-json", false, "Log as JSON")
	)
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "txnlockd",
		Level:      hclog.LevelFromString(*logLevel),
		JSONFormat: *logJSON,
	})

	var nid uuid.UUID
	if *nodeID == "" {
		nid = uuid.New()
		logger.Info("generated node id", "node_id", nid)
	} else {
		var err error
		nid, err = uuid.Parse(*nodeID)
		if err != nil {
			logger.Error("invalid node id", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("starting lock service",
		"node_id", nid,
		"raft", *raftAddr,
		"grpc", *grpcAddr,
		"http", *httpAddr,
		"data_dir", *dataDir,
		"bootstrap", *bootstrap)

	node, err := raft.NewNode(&raft.Config{
		NodeID:    nid,
		BindAddr:  *raftAddr,
		DataDir:   *dataDir,
		Bootstrap: *bootstrap,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to create raft node", "error", err)
		os.Exit(1)
	}
	defer node.Shutdown()

	lockServer := server.NewServer(node, logger)

	grpcServer := grpc.NewServer()
	pb.RegisterLockServiceServer(grpcServer, lockServer)

	listener, err := net.Listen("tcp", *grpcAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", *grpcAddr, "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("grpc server listening", "addr", *grpcAddr)
		if err := grpcServer.Serve(listener); err != nil {
			logger.Error("grpc server failed", "error", err)
		}
	}()

	gwServer := gateway.NewServer(*httpAddr, lockServer, logger)
	go func() {
		if err := gwServer.Start(context.Background()); err != nil {
			logger.Error("http gateway failed", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("lock service ready")
	<-sigCh
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	if err := gwServer.Stop(ctx); err != nil {
		logger.Warn("http gateway shutdown", "error", err)
	}

	logger.Info("shutdown complete")
}
