package bundlefx

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/joeydtaylor/hemtt/controllers"
	"github.com/joeydtaylor/hemtt/middleware/logger"
	"github.com/joeydtaylor/hemtt/middleware/metrics"
	"github.com/joeydtaylor/hemtt/router"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	ListenAddrEnv = "SERVER_LISTEN_ADDRESS"
	DefaultListen = ":4000"
	TLSCertEnv    = "SSL_SERVER_CERTIFICATE"
	TLSKeyEnv     = "SSL_SERVER_KEY"
)

func ProvideRouter(lm logger.Middleware, m *metrics.Metrics, c *controllers.Controller) http.Handler {
	return router.BuildRouter(router.BuildDeps{
		LogMW:       lm,
		Metrics:     m,
		Controllers: c,
	})
}

type Server struct {
	srv *http.Server
	ln  net.Listener
}

// Addr is the bound address once the app has started.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func ProvideServer(lc fx.Lifecycle, h http.Handler, log *zap.Logger) *Server {
	s := &Server{
		srv: &http.Server{
			Addr:              envOr(ListenAddrEnv, DefaultListen),
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	cert := envOr(TLSCertEnv, "")
	key := envOr(TLSKeyEnv, "")

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", s.srv.Addr)
			if err != nil {
				return err
			}
			s.ln = ln
			log.Info("listening", zap.String("addr", s.Addr()), zap.Bool("tls", cert != "" && key != ""))
			go func() {
				var err error
				if cert != "" && key != "" {
					err = s.srv.ServeTLS(ln, cert, key)
				} else {
					err = s.srv.Serve(ln)
				}
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.srv.Shutdown(ctx)
		},
	})
	return s
}
