// Package health exposes the standard grpc.health.v1 service.
package health

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Server wraps the grpc health server with the service lifecycle.
type Server struct {
	hs *health.Server
}

// Register attaches a health service to srv, reporting SERVING for the
// overall server ("") and for every name in services.
func Register(srv *grpc.Server, services ...string) *Server {
	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, hs)

	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range services {
		hs.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}
	return &Server{hs: hs}
}

// Shutdown flips every service to NOT_SERVING so load balancers drain
// traffic before the listener closes.
func (s *Server) Shutdown() {
	s.hs.Shutdown()
}
