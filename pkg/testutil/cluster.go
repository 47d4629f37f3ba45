// Package testutil starts an in-memory lock service for tests.
package testutil

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	pb "github.com/pixperk/txnfence/api/v1"
	"github.com/pixperk/txnfence/pkg/raft"
	"github.com/pixperk/txnfence/pkg/server"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1 << 20

// a single-node lock service reachable over bufconn
type Cluster struct {
	Node     *raft.Node
	listener *bufconn.Listener
}

func StartCluster(t *testing.T) *Cluster {
	t.Helper()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   t.Name(),
		Level:  hclog.Warn,
		Output: hclog.DefaultOutput,
	})

	node, err := raft.NewNode(&raft.Config{
		NodeID:              uuid.New(),
		BindAddr:            "127.0.0.1:0",
		DataDir:             t.TempDir(),
		Bootstrap:           true,
		ExpiryCheckInterval: 50 * time.Millisecond,
		Logger:              logger,
	})
	require.NoError(t, err)
	require.NoError(t, node.WaitForLeader(5*time.Second))

	listener := bufconn.Listen(bufSize)
	grpcServer := grpc.NewServer()
	pb.RegisterLockServiceServer(grpcServer, server.NewServer(node, logger))
	go grpcServer.Serve(listener)

	t.Cleanup(func() {
		grpcServer.Stop()
		node.Shutdown()
	})

	return &Cluster{Node: node, listener: listener}
}

// target for grpc.NewClient, pair it with DialOption
func (c *Cluster) Target() string {
	return "passthrough:///bufnet"
}

func (c *Cluster) DialOption() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return c.listener.DialContext(ctx)
	})
}
