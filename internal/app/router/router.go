// Package router wires the HTTP routes to their handlers and middleware.
package router

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	authhandler "phonebook_backend/internal/feature/auth/transport/handler"
	contactdto "phonebook_backend/internal/feature/contacts/transport/http/dto"
	contacthandler "phonebook_backend/internal/feature/contacts/transport/handler"
	"phonebook_backend/internal/platform/config"
	platformhandler "phonebook_backend/internal/platform/http/handler"
	jwtmw "phonebook_backend/internal/platform/jwt"
	"phonebook_backend/internal/platform/middleware"
)

// NewRouter builds the route table. The register and login endpoints are
// public but rate limited; everything else under /api/v1 needs a bearer
// token.
func NewRouter(cfg *config.Config, rdb *redis.Client,
	authH *authhandler.AuthHandler, contactH *contacthandler.ContactHandler) *gin.Engine {

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := contactdto.RegisterPhoneRule(v); err != nil {
			log.Fatalf("failed to register phone validation: %v", err)
		}
	}

	r := gin.Default()
	r.Use(middleware.RequestID())

	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		r.Use(cors.New(corsCfg))
	}

	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api/v1")

	authLimit := middleware.RateLimit(rdb, cfg.AuthRateLimit, cfg.AuthRateWindow)
	api.POST("/users/register", authLimit, authH.Register)
	api.POST("/users/auth", authLimit, authH.Login)

	// Routes below require a bearer token
	authRequired := jwtmw.AuthRequired(cfg.JWTSecret)

	contacts := api.Group("/contacts")
	contacts.Use(authRequired)
	{
		contacts.POST("/create", contactH.Create)
		contacts.DELETE("/delete", contactH.Delete)
		contacts.PUT("/:contact/edit", contactH.Edit)
	}

	api.GET("/users/:login/contacts", authRequired, contactH.List)

	return r
}
