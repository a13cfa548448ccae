package db

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const healthService = "postgres"

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthWatcher keeps the gRPC health status of the "postgres" service in sync
// with database reachability.
type HealthWatcher struct {
	db       Pinger
	server   *health.Server
	interval time.Duration
	timeout  time.Duration
}

func NewHealthWatcher(db Pinger) *HealthWatcher {
	return &HealthWatcher{
		db:       db,
		server:   health.NewServer(),
		interval: 15 * time.Second,
		timeout:  3 * time.Second,
	}
}

func (w *HealthWatcher) Register(srv *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(srv, w.server)
	w.server.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_SERVING)
}

func (w *HealthWatcher) Server() *health.Server {
	return w.server
}

// Run checks the database every interval until ctx is done.
func (w *HealthWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.server.Shutdown()
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

func (w *HealthWatcher) Check(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := w.db.Ping(pingCtx); err != nil {
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	w.server.SetServingStatus(healthService, status)
	return status
}
