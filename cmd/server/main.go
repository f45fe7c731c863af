package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	myPostgresRepo "github.com/yaskovbs/My-Second-Project/internal/adapters/db/postgres"
	myHTTP "github.com/yaskovbs/My-Second-Project/internal/adapters/transport/http"
	"github.com/yaskovbs/My-Second-Project/internal/app/auth/jwt"
	usersvc "github.com/yaskovbs/My-Second-Project/internal/app/user/service"
	"github.com/yaskovbs/My-Second-Project/internal/infra/config"
	lg "github.com/yaskovbs/My-Second-Project/internal/infra/log"
	"github.com/yaskovbs/My-Second-Project/internal/infra/migrate"
	"github.com/yaskovbs/My-Second-Project/internal/infra/server"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	tokens, err := jwt.NewTokenService(cfg)
	if err != nil {
		zapLog.Fatal("failed to init token service", zap.Error(err))
	}

	userRepo := myPostgresRepo.NewPostgresUserRepo(db)
	svc := usersvc.New(userRepo, tokens, usersvc.NewValidator())
	router := myHTTP.NewRouter(cfg, svc, tokens, zapLog)

	rootCtx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		return server.StartHTTPServer(ctx, cfg, router, zapLog)
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		zapLog.Info("shutdown signal received")
	case <-ctx.Done():
	}
	cancel()

	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
