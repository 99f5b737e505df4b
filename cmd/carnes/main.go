package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gocarne/config"
	"gocarne/internal/app"
	"gocarne/internal/cli"
	"gocarne/internal/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()

	flag.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "URL base da API de carnês")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "nível de log (debug, info, warn, error)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, cli.Usage) }
	flag.Parse()

	log := logger.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, log)
	if err != nil {
		log.Fatal("Falha ao abrir o armazenamento da sessão.", err)
	}
	a.Start(ctx)

	code := cli.Run(ctx, a, flag.Args(), os.Stdout)
	if err := a.Close(); err != nil {
		log.Error("Falha ao fechar o armazenamento da sessão.", err)
	}
	os.Exit(code)
}
