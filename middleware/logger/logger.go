// middleware/logger/logger.go
package logger

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimd "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level       string
	Development bool

	// File enables a rotating JSON log next to the console output.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ConfigFromEnv reads LOG_* variables. Unset or bad numbers fall back to
// lumberjack-friendly defaults.
func ConfigFromEnv() Config {
	return Config{
		Level:       strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		Development: strings.EqualFold(os.Getenv("LOG_DEV"), "true"),
		File:        strings.TrimSpace(os.Getenv("LOG_FILE")),
		MaxSizeMB:   envInt("LOG_MAX_SIZE_MB", 100),
		MaxBackups:  envInt("LOG_MAX_BACKUPS", 7),
		MaxAgeDays:  envInt("LOG_MAX_AGE_DAYS", 30),
	}
}

// New builds a console logger on stderr, teed into a rotating file when
// cfg.File is set.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Development {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level),
	}

	if cfg.File != "" {
		rot := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		fileEnc := zap.NewProductionEncoderConfig()
		fileEnc.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEnc), zapcore.AddSync(rot), level))
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), opts...), nil
}

// -------------------- DI providers --------------------

func ProvideLogger(lc fx.Lifecycle) (*zap.Logger, error) {
	l, err := New(ConfigFromEnv())
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// stderr sync fails on some platforms; nothing to act on
			_ = l.Sync()
			return nil
		},
	})
	return l, nil
}

type Middleware struct {
	log *zap.Logger
}

func ProvideMiddleware(l *zap.Logger) Middleware {
	return Middleware{log: l.Named("http")}
}

// Middleware logs one line per request once the handler returns.
func (m Middleware) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				route := "unmatched"
				if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
					route = rc.RoutePattern()
				}
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("route", route),
					zap.String("path", r.URL.Path),
					zap.Int("status", status),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
				}
				if rid := chimd.GetReqID(r.Context()); rid != "" {
					fields = append(fields, zap.String("request_id", rid))
				}
				if status >= http.StatusInternalServerError {
					m.log.Error("request", fields...)
					return
				}
				m.log.Info("request", fields...)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

var Module = fx.Options(
	fx.Provide(ProvideLogger, ProvideMiddleware),
)

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
