package main

import (
	"context"
	"flag"
	"log"

	"agrorent-api/pkg/config"
	"agrorent-api/pkg/database/postgresql"
	"agrorent-api/seeders"
)

func main() {
	demo := flag.Bool("demo", false, "Carrega o conjunto de dados de demonstração (apaga os dados atuais)")
	flag.Parse()

	if !*demo {
		log.Println("Nenhum seeder selecionado.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Exemplo: go run ./seeders/cmd/seed -demo")
		return
	}

	cfg := config.New()
	log.Println("📦 DSN em uso:", cfg.Postgres.DSN)

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("ERRO ao executar migrações: %v", err)
	}

	dbPool, err := postgresql.Connect(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco: %v", err)
	}
	defer dbPool.Close()

	seeders.SeedDemo(dbPool)
}
