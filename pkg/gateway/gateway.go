// Package gateway serves the operator HTTP surface of a lock service node:
// prometheus metrics, node status and a leader-aware health check.
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"
	pb "github.com/pixperk/txnfence/api/v1"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/protobuf/encoding/protojson"
)

// the slice of the lock service the gateway reads from
type StatusSource interface {
	GetStatus(ctx context.Context, req *pb.GetStatusRequest) (*pb.GetStatusResponse, error)
}

type Server struct {
	httpServer *http.Server
	status     StatusSource
	logger     hclog.Logger
}

func NewServer(httpAddr string, status StatusSource, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s := &Server{
		status: status,
		logger: logger.Named("gateway"),
	}
	s.httpServer = &http.Server{
		Addr:    httpAddr,
		Handler: s.Handler(),
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := s.status.GetStatus(r.Context(), &pb.GetStatusRequest{})
	if err != nil {
		s.logger.Warn("status request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	body, err := protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}.Marshal(resp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		s.logger.Warn("failed to write status", "error", err)
	}
}

// 200 once the node knows a leader, 503 before that
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp, err := s.status.GetStatus(r.Context(), &pb.GetStatusRequest{})
	if err != nil || resp.LeaderAddress == "" {
		http.Error(w, "no leader", http.StatusServiceUnavailable)
		return
	}
	fmt.Fprintln(w, "ok")
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("http gateway listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP gateway: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
