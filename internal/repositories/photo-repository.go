package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agrorent-api/internal/entities"
	apperrors "agrorent-api/pkg/errors"
)

const photoTable = "equipment_photos"
const photoFields = "id, equipment_id, url, created_at"

type PhotoRepositoryInterface interface {
	AddPhotos(ctx context.Context, equipmentID string, urls []string) ([]entities.Photo, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]entities.Photo, error)
	FindByID(ctx context.Context, photoID, equipmentID string) (*entities.Photo, error)
	Delete(ctx context.Context, photoID, equipmentID string) (bool, error)
}

type PhotoRepository struct {
	storage Querier
}

func NewPhotoRepository(storage *pgxpool.Pool) PhotoRepositoryInterface {
	return &PhotoRepository{storage: storage}
}

func scanPhoto(row pgx.Row) (*entities.Photo, error) {
	var p entities.Photo
	if err := row.Scan(&p.ID, &p.EquipmentID, &p.URL, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan de equipment_photos: %w", err)
	}
	return &p, nil
}

// AddPhotos inserts one row per URL and returns the created photos in
// insertion order.
func (r *PhotoRepository) AddPhotos(ctx context.Context, equipmentID string, urls []string) ([]entities.Photo, error) {
	if len(urls) == 0 {
		return []entities.Photo{}, nil
	}

	builder := psql.Insert(photoTable).Columns("equipment_id", "url")
	for _, url := range urls {
		builder = builder.Values(equipmentID, url)
	}

	query, args, err := builder.Suffix("RETURNING " + photoFields).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("inserindo fotos: %w", err)
	}
	defer rows.Close()

	photos := make([]entities.Photo, 0, len(urls))
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	return photos, rows.Err()
}

// ListByEquipment returns the photo collection newest first, id breaking
// creation-time ties.
func (r *PhotoRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]entities.Photo, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE equipment_id = $1 ORDER BY created_at DESC, id DESC",
		photoFields, photoTable)

	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("listando fotos: %w", err)
	}
	defer rows.Close()

	photos := make([]entities.Photo, 0)
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	return photos, rows.Err()
}

// FindByID resolves a photo only within its parent equipment, so a photo id
// from someone else's listing never matches.
func (r *PhotoRepository) FindByID(ctx context.Context, photoID, equipmentID string) (*entities.Photo, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1 AND equipment_id = $2", photoFields, photoTable)
	return scanPhoto(r.storage.QueryRow(ctx, query, photoID, equipmentID))
}

func (r *PhotoRepository) Delete(ctx context.Context, photoID, equipmentID string) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND equipment_id = $2", photoTable)

	tag, err := r.storage.Exec(ctx, query, photoID, equipmentID)
	if err != nil {
		return false, fmt.Errorf("removendo foto: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
