package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pb "github.com/pixperk/txnfence/api/v1"
	"github.com/pixperk/txnfence/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
)

type fakeStatus struct {
	resp *pb.GetStatusResponse
	err  error
}

func (f fakeStatus) GetStatus(ctx context.Context, req *pb.GetStatusRequest) (*pb.GetStatusResponse, error) {
	return f.resp, f.err
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestStatus(t *testing.T) {
	s := NewServer(":0", fakeStatus{resp: &pb.GetStatusResponse{
		NodeId:         "n1",
		IsLeader:       true,
		LeaderAddress:  "127.0.0.1:7000",
		ClusterSize:    1,
		State:          "Leader",
		Locks:          2,
		FencingCounter: 42,
	}}, nil)

	rec := get(t, s.Handler(), "/status")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	assert.Contains(t, rec.Body.String(), `"node_id"`)
	assert.Contains(t, rec.Body.String(), `"leases"`, "zero values are written out")

	var got pb.GetStatusResponse
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "n1", got.NodeId)
	assert.Equal(t, uint64(42), got.FencingCounter)
	assert.Equal(t, int32(2), got.Locks)
}

func TestStatusError(t *testing.T) {
	s := NewServer(":0", fakeStatus{err: errors.New("boom")}, nil)

	rec := get(t, s.Handler(), "/status")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		source fakeStatus
		code   int
	}{
		{"leader known", fakeStatus{resp: &pb.GetStatusResponse{LeaderAddress: "127.0.0.1:7000"}}, http.StatusOK},
		{"no leader", fakeStatus{resp: &pb.GetStatusResponse{}}, http.StatusServiceUnavailable},
		{"status failed", fakeStatus{err: errors.New("boom")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(":0", tt.source, nil)
			assert.Equal(t, tt.code, get(t, s.Handler(), "/healthz").Code)
		})
	}
}

func TestMetrics(t *testing.T) {
	metrics.SetLeader(true)
	s := NewServer(":0", fakeStatus{}, nil)

	rec := get(t, s.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "txnfence_raft_is_leader 1"))
}
