// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/joeydtaylor/hemtt/controllers"
	"github.com/joeydtaylor/hemtt/middleware/logger"
	"github.com/joeydtaylor/hemtt/middleware/metrics"
	"go.uber.org/fx"
)

// Module provided to fx
var Module = fx.Options(
	logger.Module,
	metrics.Module,
	fx.Provide(
		ProvideProject,
		controllers.ProvideController,
		ProvideRouter,
		ProvideServer,
	),
	fx.Invoke(func(*Server) {}),
)
