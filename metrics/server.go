package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/NethermindEth/starknet-api/clients/feeder"
	"github.com/NethermindEth/starknet-api/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sourcegraph/conc"
)

// Server serves the metrics of a registry along with the log level and, when
// a feeder client is given, its timeouts.
type Server struct {
	srv      *http.Server
	listener net.Listener
}

func NewServer(
	listener net.Listener,
	registry *prometheus.Registry,
	logLevel *utils.LogLevel,
	client *feeder.Client,
) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(registry))
	mux.HandleFunc("/log/level", func(w http.ResponseWriter, r *http.Request) {
		utils.HTTPLogSettings(w, r, logLevel)
	})
	if client != nil {
		mux.HandleFunc("/feeder/timeouts", func(w http.ResponseWriter, r *http.Request) {
			feeder.HTTPTimeoutsSettings(w, r, client)
		})
	}
	return &Server{
		srv: &http.Server{
			Addr:    listener.Addr().String(),
			Handler: mux,
			// ReadTimeout also sets ReadHeaderTimeout and IdleTimeout.
			ReadTimeout: 30 * time.Second,
		},
		listener: listener,
	}
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	var wg conc.WaitGroup
	defer wg.Wait()
	wg.Go(func() {
		if err := s.srv.Serve(s.listener); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	})

	select {
	case <-ctx.Done():
		return s.srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}
