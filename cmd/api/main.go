package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/nezia1/missive/config"
	"github.com/nezia1/missive/internal/auth"
	"github.com/nezia1/missive/internal/messaging"
	messagingRepo "github.com/nezia1/missive/internal/messaging/repository"
	messagingUC "github.com/nezia1/missive/internal/messaging/usecase"
	"github.com/nezia1/missive/internal/push"
	"github.com/nezia1/missive/internal/server"
	userRepo "github.com/nezia1/missive/internal/user/repository"
	userUC "github.com/nezia1/missive/internal/user/usecase"
	"github.com/nezia1/missive/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	lg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync()

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	if err := db.Ping(); err != nil {
		lg.Error("failed to reach database", "err", err)
		log.Fatal("database unreachable")
	}
	defer db.Close()

	signer, err := auth.NewSignerFromConfig(cfg)
	if err != nil {
		lg.Error("failed to load signing key", "path", cfg.Auth.PrivateKeyPath, "err", err)
		log.Fatal("signing key unavailable")
	}
	hasher := auth.NewPasswordHasher(cfg.Argon2)

	users := userRepo.NewUserRepository(db, lg)
	messages := messagingRepo.NewMessageRepository(db, lg)

	tokens := auth.NewTokenUsecase(users, signer, hasher, lg)
	profiles := userUC.NewUserUsecase(users, hasher, lg, cfg)
	inbox := messagingUC.NewMessageUsecase(messages, lg)

	presence := messaging.NewPresenceRegistry()
	notifier := push.FromConfig(cfg, lg)
	router := messaging.NewRouter(users, messages, presence, notifier, lg)

	srv := server.New(cfg, lg, profiles, tokens, inbox, presence, router)
	if err := srv.ListenAndServe(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		lg.Error("server stopped", "err", err)
		log.Fatal(err)
	}
}
