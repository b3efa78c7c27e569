package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/vituglow/vituglow-server/docs"
	"github.com/vituglow/vituglow-server/internal/auth"
	"github.com/vituglow/vituglow-server/internal/config"
	"github.com/vituglow/vituglow-server/internal/order"
	"github.com/vituglow/vituglow-server/internal/product"
	"github.com/vituglow/vituglow-server/internal/store"
	"github.com/vituglow/vituglow-server/internal/user"
)

// @title        VituGlow API
// @version      1.0
// @description  E-commerce backend: users, product catalog and orders.
// @BasePath     /
func main() {
	cfg := config.Load()

	var logger *zap.Logger
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
		logger = zap.Must(zap.NewProduction())
	} else {
		logger = zap.Must(zap.NewDevelopment())
	}
	defer func() { _ = logger.Sync() }()

	client, err := store.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer store.Disconnect(client)
	logger.Info("connected to mongo", zap.String("db", cfg.DBName))

	db := client.Database(cfg.DBName)
	r := newRouter(deps{
		cfg:      cfg,
		log:      logger,
		tokens:   auth.NewService(cfg.TokenSecret),
		users:    user.NewMongoRepo(db),
		products: product.NewMongoRepo(db),
		orders:   order.NewMongoRepo(db),
	})

	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
