package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/KromaEnergia/api-fichas/internal/admin"
	"github.com/KromaEnergia/api-fichas/internal/auth"
	"github.com/KromaEnergia/api-fichas/internal/config"
	"github.com/KromaEnergia/api-fichas/internal/ficha"
	"github.com/KromaEnergia/api-fichas/internal/logger"
	"github.com/KromaEnergia/api-fichas/internal/notificacao"
	"github.com/KromaEnergia/api-fichas/internal/utils/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	lg, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		log.Fatalf("Erro ao iniciar logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	database, err := db.ConnectDataBase(cfg)
	if err != nil {
		lg.Fatalw("Erro ao conectar no banco", "error", err)
	}

	// AutoMigrate para todos os modelos
	if err := ficha.Migrate(database); err != nil {
		lg.Fatalw("Erro no AutoMigrate das fichas", "error", err)
	}
	if err := admin.Migrate(database); err != nil {
		lg.Fatalw("Erro no AutoMigrate dos admins", "error", err)
	}
	if err := admin.Garantir(database, admin.NewRepository(),
		cfg.Admin.Nome, cfg.Admin.Email, cfg.Admin.Senha, lg); err != nil {
		lg.Fatalw("Erro ao criar admin inicial", "error", err)
	}

	emissor := auth.NewEmissor(cfg.Auth.JWTSecret, cfg.Auth.TTL)

	// Handlers
	fichaService := ficha.NewService(ficha.NewRepository(database), lg)
	fichaHandler := ficha.NewHandler(fichaService, notificacao.NewWebhook(cfg.Webhook.URL, cfg.Webhook.Timeout, lg), lg)
	adminHandler := admin.NewHandler(database, emissor, lg)

	// Router
	r := mux.NewRouter()
	adminHandler.Routes(r, emissor.MiddlewareAutenticacao)
	fichaHandler.Routes(r, emissor.MiddlewareAutenticacao)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Inicia servidor
	lg.Infow("Servidor rodando", "port", cfg.App.Port)
	if err := srv.ListenAndServe(); err != nil {
		lg.Fatalw("Servidor parou", "error", err)
	}
}
