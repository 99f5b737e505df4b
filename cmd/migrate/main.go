package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"gocarne/config"
	"gocarne/internal/pkg/database"
	"gocarne/internal/pkg/storage"
)

func main() {
	// Carrega o .env
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Aviso: arquivo .env não encontrado ou erro de leitura. Usando apenas o ambiente do sistema: %v", err)
	}

	cfg := config.LoadConfig()

	var databaseURL string
	flag.StringVar(&databaseURL, "db", cfg.SessionDatabaseURL, "URL do banco da sessão (sqlite://... ou postgres://...)")
	flag.Parse()

	db, driver, err := database.Open(databaseURL)
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: falha ao fechar o DB: %v\n", err)
		}
	}()

	goose.SetBaseFS(storage.MigrationsFS())
	if err := goose.SetDialect(driver.GooseDialect()); err != nil {
		log.Fatalf("goose: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, "migrations", args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
