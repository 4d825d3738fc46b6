package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"agrorent-api/pkg/utils"
)

// SeedDemo wipes the marketplace tables and loads a small demo dataset:
// three owners and a handful of listings with photos.
func SeedDemo(db *pgxpool.Pool) {
	ctx := context.Background()

	if err := seedDemo(ctx, db); err != nil {
		log.Fatalf("ERRO ao popular dados de demonstração: %v", err)
	}
	log.Println("✅ Dados de demonstração carregados.")
}

func seedDemo(ctx context.Context, db *pgxpool.Pool) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	log.Println("  - Limpando tabelas 'users', 'equipments', 'equipment_photos'...")
	if _, err := tx.Exec(ctx, "TRUNCATE TABLE users RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	log.Println("  - Inserindo usuários...")
	userIDsByEmail := make(map[string]string, len(usersData))
	for _, u := range usersData {
		hash, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("hash de senha para %q: %w", u.Email, err)
		}
		var phone *string
		if u.Phone != "" {
			phone = &u.Phone
		}
		var id string
		err = tx.QueryRow(ctx,
			`INSERT INTO users (full_name, email, cpf, phone, password_hash)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id::text`,
			u.FullName, u.Email, u.CPF, phone, hash,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("inserindo usuário %q: %w", u.Email, err)
		}
		userIDsByEmail[u.Email] = id
	}

	log.Println("  - Inserindo equipamentos e fotos...")
	for _, e := range equipmentsData {
		ownerID, ok := userIDsByEmail[e.OwnerEmail]
		if !ok {
			log.Printf("AVISO: dono %q não encontrado, pulando %s %s.", e.OwnerEmail, e.Brand, e.Model)
			continue
		}

		var equipmentID string
		err := tx.QueryRow(ctx,
			`INSERT INTO equipments (owner_id, type, brand, model, year, condition, price, city, state, description)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id::text`,
			ownerID, e.Type, e.Brand, e.Model, e.Year, e.Condition, e.Price, e.City, e.State, e.Description,
		).Scan(&equipmentID)
		if err != nil {
			return fmt.Errorf("inserindo equipamento %s %s: %w", e.Brand, e.Model, err)
		}

		for _, url := range e.PhotoURLs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO equipment_photos (equipment_id, url) VALUES ($1, $2)`,
				equipmentID, url,
			); err != nil {
				return fmt.Errorf("inserindo foto de %s %s: %w", e.Brand, e.Model, err)
			}
		}
	}

	return tx.Commit(ctx)
}
