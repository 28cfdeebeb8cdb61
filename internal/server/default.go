package server

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/dkusuma/manning/modules/manning/presentation/controllers"
	"github.com/dkusuma/manning/modules/manning/services"
	"github.com/dkusuma/manning/pkg/configuration"
	"github.com/dkusuma/manning/pkg/middleware"
	"github.com/dkusuma/manning/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
}

// Default assembles the HTTP server: the manning controller behind the
// request-logging middleware. Services are stateless, so one instance of
// each serves all requests.
func Default(options *DefaultOptions) *server.HTTPServer {
	cleaner := services.NewCleanerService(options.Logger)
	manning := services.NewManningTableService(options.Logger)

	ctrls := []server.Controller{
		controllers.NewManningController(options.Logger, cleaner, manning, options.Configuration.MaxUploadSize),
	}
	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger),
	}
	return server.NewHTTPServer(ctrls, middlewares...)
}
