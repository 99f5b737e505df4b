package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"gocarne/config"
	"gocarne/internal/fakeapi"
	"gocarne/internal/pkg/logger"
	"gocarne/internal/pkg/middleware"
	"gocarne/internal/pkg/token"
)

func main() {
	log.Println("⚡ Inicializando backend de desenvolvimento GoCarnê...")
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", nil)

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	log.Debug("Serviço de Tokens JWT inicializado.", nil)

	var loginCounter middleware.Counter
	if cfg.FakeLimitRedis {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Warn("Redis indisponível; limite de login ficará em memória.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
			rdb.Close()
		} else {
			defer rdb.Close()
			loginCounter = middleware.NewRedisCounter(rdb, "fakeapi")
			log.Info("Limite de login compartilhado via Redis.", map[string]interface{}{"addr": cfg.RedisAddr})
		}
	}

	handler, _ := fakeapi.NewServer(fakeapi.Options{
		Tokens:        tokenSvc,
		AdminEmail:    cfg.FakeAdminEmail,
		AdminPassword: cfg.FakeAdminPassword,
		LoginLimit:    cfg.FakeLoginLimit,
		LoginCounter:  loginCounter,
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.FakeAPIPort,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Backend fake ouvindo na porta", map[string]interface{}{"port": cfg.FakeAPIPort})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
