package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
	"github.com/murkotick/shoe-card-service/internal/config"
	"github.com/murkotick/shoe-card-service/internal/pkg/clock"
)

var (
	clk      *clock.FakeClock
	baseURL  string
	grpcConn *grpc.ClientConn
)

func testConfig() config.Config {
	return config.Config{
		CurrencyCode:        "USD",
		CurrencySymbol:      "$",
		Locale:              "en-US",
		NewReleaseWindow:    30 * 24 * time.Hour,
		ProductPathTemplate: "/shoe/{slug}",
		BatchConcurrency:    4,
		Palette:             domain.DefaultPalette(),
	}
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	clk = clock.NewFake(time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))

	srv, err := New(testConfig(), clk, nil)
	if err != nil {
		panic(fmt.Sprintf("server.New: %v", err))
	}

	httpLis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(fmt.Sprintf("listen http: %v", err))
	}
	grpcLis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(fmt.Sprintf("listen grpc: %v", err))
	}
	baseURL = "http://" + httpLis.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, httpLis, grpcLis) }()

	grpcConn, err = grpc.NewClient(grpcLis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("grpc.NewClient: %v", err))
	}

	code := m.Run()

	_ = grpcConn.Close()
	cancel()
	if err := <-done; err != nil {
		panic(fmt.Sprintf("serve: %v", err))
	}

	os.Exit(code)
}
