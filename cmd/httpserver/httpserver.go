// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/okutan/card-vault/internal/carddelivery"
	"github.com/okutan/card-vault/internal/cardrepo"
	"github.com/okutan/card-vault/internal/cardservice"
	"github.com/okutan/card-vault/internal/middleware"
	"github.com/okutan/card-vault/internal/sessiondelivery"
	"github.com/okutan/card-vault/internal/sessionrepo"
	"github.com/okutan/card-vault/internal/sessionservice"
	"github.com/okutan/card-vault/internal/userdelivery"
	"github.com/okutan/card-vault/internal/userrepo"
	"github.com/okutan/card-vault/internal/userservice"
	"github.com/okutan/card-vault/pkg/configpkg"
	"github.com/okutan/card-vault/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	cardRepo := cardrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	cardService := cardservice.New(cardRepo)
	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)

	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	cardHandler := carddelivery.NewHandler(cardService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.GET("/users/me", userHandler.Me)
	authRoutes.DELETE("/sessions", sessionHandler.Revoke)

	authRoutes.POST("/cards", cardHandler.Create)
	authRoutes.GET("/cards", cardHandler.List)
	authRoutes.GET("/cards/summary", cardHandler.Summary)
	authRoutes.GET("/cards/:id", cardHandler.Get)
	authRoutes.PUT("/cards/:id", cardHandler.Update)
	authRoutes.DELETE("/cards/:id", cardHandler.Delete)

	authRoutes.GET("/banks", cardHandler.ListBanks)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("cardnumber", carddelivery.ValidCardNumber); err != nil {
			return nil, errors.New("cannot register card number validator")
		}

		if err := v.RegisterValidation("carddate", carddelivery.ValidCardDate); err != nil {
			return nil, errors.New("cannot register card date validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
