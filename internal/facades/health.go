package facades

import (
	"context"

	"github.com/sbilibin2017/gw-missions/internal/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthGRPCFacade reads server health through the standard gRPC health service.
type HealthGRPCFacade struct {
	client healthpb.HealthClient
}

// NewHealthGRPCFacade creates a new facade with a gRPC health client.
func NewHealthGRPCFacade(client healthpb.HealthClient) *HealthGRPCFacade {
	return &HealthGRPCFacade{client: client}
}

// Status returns the serving status of service; "" names the whole server.
func (f *HealthGRPCFacade) Status(ctx context.Context, service string) (string, error) {
	resp, err := f.client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		logger.Log.Errorw("failed to check health via gRPC", "service", service, "error", err)
		return "", err
	}
	return resp.GetStatus().String(), nil
}
