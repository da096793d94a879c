package bundlefx

import (
	"errors"
	"os"
	"strings"

	"github.com/joeydtaylor/hemtt/middleware/metrics"
	"github.com/joeydtaylor/hemtt/project"
	"go.uber.org/zap"
)

const (
	ProjectEnv     = "HEMTT_PROJECT"
	DefaultProject = ".hemtt/project.toml"
)

// ProvideProject loads the project named by HEMTT_PROJECT. Any load error
// aborts application start.
func ProvideProject(log *zap.Logger, m *metrics.Metrics) (*project.Project, error) {
	path := envOr(ProjectEnv, DefaultProject)
	p, err := project.LoadConfig(path)
	m.ObserveLoad(err)
	if err != nil {
		fields := []zap.Field{
			zap.String("path", path),
			zap.String("kind", project.ErrorKind(err)),
			zap.Error(err),
		}
		var perr *project.ParseError
		if errors.As(err, &perr) && perr.Detail != "" {
			fields = append(fields, zap.String("detail", perr.Detail))
		}
		log.Error("project config load failed", fields...)
		return nil, err
	}

	mainPrefix, _ := p.MainPrefix()
	log.Info("project loaded",
		zap.String("path", path),
		zap.String("name", p.Name()),
		zap.String("prefix", p.Prefix()),
		zap.String("mainprefix", mainPrefix),
		zap.Int("headers", len(p.Headers())),
		zap.Strings("files", p.DeclaredFiles()),
	)
	return p, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
