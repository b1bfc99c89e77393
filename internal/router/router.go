// Package router builds the echo instance: the middleware chain, the API
// routes, the system routes and the catch-all 404.
package router

import (
	"net/http"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/handler"
	"github.com/deppfellow/exercise-tracker/internal/middleware"
	"github.com/deppfellow/exercise-tracker/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// maxBodySize caps request bodies; every payload here is a handful of fields.
const maxBodySize = "64K"

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middleware.HTTPMetrics(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		echoMiddleware.BodyLimit(maxBodySize),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, s, h)
	registerExerciseRoutes(router, h)

	router.RouteNotFound("/*", func(c echo.Context) error {
		return errs.NewNotFoundError(middleware.RouteNotFoundMessage)
	})

	return router
}

func registerExerciseRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api/exercise")

	api.POST("/new-user", handler.Handle(
		h.Exercise.Handler,
		h.Exercise.NewUser,
		http.StatusOK,
		&handler.NewUserRequest{},
	))

	api.POST("/add", handler.Handle(
		h.Exercise.Handler,
		h.Exercise.AddExercise,
		http.StatusOK,
		&handler.AddExerciseRequest{},
	))

	api.GET("/log", handler.Handle(
		h.Exercise.Handler,
		h.Exercise.Log,
		http.StatusOK,
		&handler.LogRequest{},
	))
}
