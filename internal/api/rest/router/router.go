package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/account-service/internal/api/rest/handler"
	"github.com/dtroode/account-service/internal/api/rest/middleware"
	"github.com/dtroode/account-service/internal/api/rest/response"
	"github.com/dtroode/account-service/internal/logger"
	"github.com/dtroode/account-service/internal/model"
)

// Options configures the HTTP surface.
type Options struct {
	AllowedOrigins []string
	StaticDir      string
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

// Router wires handlers and middleware into a gin engine.
type Router struct {
	authService    handler.AuthService
	userService    handler.UserService
	gate           middleware.Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
	opts           Options
}

// New creates new Router instance.
func New(
	authService handler.AuthService,
	userService handler.UserService,
	gate middleware.Authenticator,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts Options,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		gate:           gate,
		contextManager: contextManager,
		logger:         logger,
		opts:           opts,
	}
}

// Register builds the engine with all routes.
func (r *Router) Register() *gin.Engine {
	e := gin.New()
	e.HandleMethodNotAllowed = true

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.gate, r.contextManager, r.logger)

	// Logging wraps Recovery so recovered panics are logged with their 500.
	e.Use(
		middleware.RequestID(),
		logging.Handle,
		middleware.Recovery(r.logger),
		middleware.SecurityHeaders(),
		middleware.CORS(r.opts.AllowedOrigins),
		middleware.BodyLimit(r.opts.MaxBodyBytes),
		middleware.Timeout(r.opts.RequestTimeout),
	)

	e.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "route not found")
	})
	e.NoMethod(func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	e.GET("/", handler.Health)
	if r.opts.StaticDir != "" {
		e.Static("/static", r.opts.StaticDir)
	}

	r.registerAuthRoutes(e)
	r.registerUserRoutes(e, authenticate.Handle)

	return e
}

func (r *Router) registerAuthRoutes(e *gin.Engine) {
	h := handler.NewAuth(r.authService, r.logger)

	g := e.Group("/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
}

func (r *Router) registerUserRoutes(e *gin.Engine, auth gin.HandlerFunc) {
	h := handler.NewUser(r.userService, r.contextManager, r.logger)

	g := e.Group("/users", auth)
	g.GET("", h.List)
	g.GET("/id", h.Get)
	g.PUT("/edit-profile", h.EditProfile)
	g.POST("/change-password", h.ChangePassword)
}
