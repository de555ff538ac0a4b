package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"phonebook_backend/internal/app/router"
	authadapters "phonebook_backend/internal/feature/auth/adapters"
	authhandler "phonebook_backend/internal/feature/auth/transport/handler"
	authusecase "phonebook_backend/internal/feature/auth/usecase"
	contactadapters "phonebook_backend/internal/feature/contacts/adapters"
	contacthandler "phonebook_backend/internal/feature/contacts/transport/handler"
	contactusecase "phonebook_backend/internal/feature/contacts/usecase"
	"phonebook_backend/internal/platform/config"
	infradb "phonebook_backend/internal/platform/db"
	infraredis "phonebook_backend/internal/platform/redis"
	jwtmw "phonebook_backend/internal/platform/jwt"
)

func main() {
	cfg := config.Load()

	// db
	db := infradb.OpenDB(cfg.DatabaseDSN, cfg.RunMigrations)

	// Redis (rate limiting only; the API works without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without rate limiting.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	contactRepo := contactadapters.NewContactGorm(db)

	// Usecase
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	contactUC := contactusecase.NewContactUsecase(contactRepo, userRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	contactH := contacthandler.NewContactHandler(contactUC)

	router := router.NewRouter(cfg, rdb, authH, contactH)

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
