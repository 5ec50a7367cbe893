// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yash261/banking-app/internal/middleware"
	"github.com/yash261/banking-app/internal/taskdelivery"
	"github.com/yash261/banking-app/internal/taskrepo"
	"github.com/yash261/banking-app/internal/taskservice"
	"github.com/yash261/banking-app/internal/transferdelivery"
	"github.com/yash261/banking-app/internal/transferrepo"
	"github.com/yash261/banking-app/internal/transferservice"
	"github.com/yash261/banking-app/internal/userdelivery"
	"github.com/yash261/banking-app/internal/userrepo"
	"github.com/yash261/banking-app/internal/userservice"
	"github.com/yash261/banking-app/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config

	userService *userservice.Service
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// SeedUser creates the configured bootstrap user when the store is empty.
func (s *Server) SeedUser(ctx context.Context) error {
	return s.userService.EnsureSeedUser(ctx, s.Config.SeedUsername, s.Config.SeedPassword)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	transferRepo := transferrepo.NewRepoPGS(conn)
	taskRepo := taskrepo.NewRepoPGS(conn)

	userService := userservice.New(userRepo)
	transferService := transferservice.New(transferRepo, userService)
	taskService := taskservice.New(taskRepo)

	userHandler := userdelivery.NewHandler(userService)
	transferHandler := transferdelivery.NewHandler(transferService)
	taskHandler := taskdelivery.NewHandler(taskService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	api := engine.Group("/api")

	api.POST("/signup", userHandler.Signup)
	api.POST("/login", userHandler.Login)
	api.GET("/users", userHandler.List)

	api.POST("/transfer", transferHandler.Create)
	api.GET("/transactions/:id", transferHandler.List)

	api.GET("/tasks", taskHandler.List)
	api.POST("/tasks", taskHandler.Create)
	api.GET("/tasks/:id", taskHandler.Get)
	api.PUT("/tasks/:id", taskHandler.Update)
	api.DELETE("/tasks/:id", taskHandler.Delete)

	server := &Server{
		DB:          conn,
		Engine:      engine,
		Config:      config,
		userService: userService,
	}

	return server, nil
}
