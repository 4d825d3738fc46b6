package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"agrorent-api/internal/dto"
	"agrorent-api/internal/entities"
	apperrors "agrorent-api/pkg/errors"
	"agrorent-api/pkg/utils"
)

const equipmentTable = "equipments"

// Aliased field list for queries over "equipments e"; the bare list is used
// in RETURNING clauses. price::text keeps the exact 2-decimal rendering of
// numeric(10,2) on the wire.
const equipmentFields = "e.id, e.owner_id, e.type, e.brand, e.model, e.year, e.condition, e.price::text, e.city, e.state, e.description, e.is_active, e.created_at"
const equipmentFieldsBare = "id, owner_id, type, brand, model, year, condition, price::text, city, state, description, is_active, created_at"

// coverJoin resolves each row's cover photo: the most recently created one,
// id as the deterministic tie-break when timestamps collide.
const coverJoin = "LEFT JOIN LATERAL (SELECT url FROM equipment_photos WHERE equipment_id = e.id ORDER BY created_at DESC, id DESC LIMIT 1) p ON true"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type EquipmentRepositoryInterface interface {
	Create(ctx context.Context, e *entities.Equipment) (*entities.Equipment, error)
	ByID(ctx context.Context, id string) (*entities.Equipment, error)
	List(ctx context.Context, ownerID *string, limit uint64) ([]entities.EquipmentWithCover, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Equipment, error)
	Search(ctx context.Context, criteria dto.SearchEquipmentDTO, limit, offset uint64) ([]entities.EquipmentWithCover, uint64, error)
	DetailWithOwner(ctx context.Context, id string) (*entities.EquipmentDetail, error)
	Update(ctx context.Context, id, ownerID string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}

type EquipmentRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Type, &e.Brand, &e.Model, &e.Year, &e.Condition,
		&e.Price, &e.City, &e.State, &e.Description, &e.IsActive, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan de equipments: %w", err)
	}
	return &e, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e *entities.Equipment) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (owner_id, type, brand, model, year, condition, price, city, state, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s
	`, equipmentTable, equipmentFieldsBare)

	row := r.storage.QueryRow(ctx, query,
		e.OwnerID, e.Type, e.Brand, e.Model, e.Year, e.Condition,
		e.Price, e.City, e.State, e.Description,
	)
	return scanEquipment(row)
}

// ByID fetches a listing regardless of its active flag; used by the
// ownership checks on the photo endpoints.
func (r *EquipmentRepository) ByID(ctx context.Context, id string) (*entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s e WHERE e.id = $1", equipmentFields, equipmentTable)
	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

// List returns active listings, newest first, cover attached. With ownerID
// set it narrows to that owner's listings (the ?mine=1 view).
func (r *EquipmentRepository) List(ctx context.Context, ownerID *string, limit uint64) ([]entities.EquipmentWithCover, error) {
	builder := psql.
		Select(equipmentFields, "p.url AS cover").
		From(equipmentTable + " e").
		JoinClause(coverJoin).
		Where(sq.Eq{"e.is_active": true}).
		OrderBy("e.created_at DESC", "e.id DESC")

	if ownerID != nil {
		builder = builder.Where(sq.Eq{"e.owner_id": *ownerID})
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryWithCover(ctx, query, args)
}

// ListByOwner returns every listing of one owner, active or not, for the
// spreadsheet export.
func (r *EquipmentRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Equipment, error) {
	query := fmt.Sprintf("SELECT %s FROM %s e WHERE e.owner_id = $1 ORDER BY e.created_at DESC, e.id DESC",
		equipmentFields, equipmentTable)

	rows, err := r.storage.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listando equipamentos do proprietário: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

// searchFilters applies the shared predicate of the count and data queries,
// keeping both logically consistent.
func searchFilters(builder sq.SelectBuilder, criteria dto.SearchEquipmentDTO) sq.SelectBuilder {
	builder = builder.
		Where(sq.Eq{"e.is_active": true}).
		Where(sq.Expr("LOWER(e.city) = LOWER(?)", criteria.City))

	if criteria.Type != nil {
		builder = builder.Where(sq.Eq{"e.type": *criteria.Type})
	}
	if criteria.MinPrice != nil {
		builder = builder.Where(sq.GtOrEq{"e.price": *criteria.MinPrice})
	}
	if criteria.MaxPrice != nil {
		builder = builder.Where(sq.LtOrEq{"e.price": *criteria.MaxPrice})
	}
	return builder
}

// Search runs the filtered count plus the ordered page slice and resolves
// each row's cover photo. A page past the end yields an empty slice with
// the true total.
func (r *EquipmentRepository) Search(ctx context.Context, criteria dto.SearchEquipmentDTO, limit, offset uint64) ([]entities.EquipmentWithCover, uint64, error) {
	countQuery, countArgs, err := searchFilters(
		psql.Select("COUNT(*)").From(equipmentTable+" e"), criteria,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contando resultados da busca: %w", err)
	}
	if total == 0 {
		return []entities.EquipmentWithCover{}, 0, nil
	}

	dataQuery, dataArgs, err := searchFilters(
		psql.Select(equipmentFields, "p.url AS cover").
			From(equipmentTable+" e").
			JoinClause(coverJoin),
		criteria,
	).
		OrderBy("e.created_at DESC", "e.id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	data, err := r.queryWithCover(ctx, dataQuery, dataArgs)
	if err != nil {
		return nil, 0, err
	}
	return data, total, nil
}

func (r *EquipmentRepository) queryWithCover(ctx context.Context, query string, args []any) ([]entities.EquipmentWithCover, error) {
	r.logger.Debug("consulta de listagem", zap.String("query", query))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listando equipamentos: %w", err)
	}
	defer rows.Close()

	list := make([]entities.EquipmentWithCover, 0)
	for rows.Next() {
		var e entities.EquipmentWithCover
		err := rows.Scan(
			&e.ID, &e.OwnerID, &e.Type, &e.Brand, &e.Model, &e.Year, &e.Condition,
			&e.Price, &e.City, &e.State, &e.Description, &e.IsActive, &e.CreatedAt,
			&e.Cover,
		)
		if err != nil {
			return nil, fmt.Errorf("scan de equipments: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// DetailWithOwner joins the owner's contact phone onto the listing. The
// photo collection is attached by the service layer.
func (r *EquipmentRepository) DetailWithOwner(ctx context.Context, id string) (*entities.EquipmentDetail, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.phone AS owner_phone
		FROM %s e
		LEFT JOIN %s u ON u.id = e.owner_id
		WHERE e.id = $1
	`, equipmentFields, equipmentTable, userTable)

	var d entities.EquipmentDetail
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.OwnerID, &d.Type, &d.Brand, &d.Model, &d.Year, &d.Condition,
		&d.Price, &d.City, &d.State, &d.Description, &d.IsActive, &d.CreatedAt,
		&d.OwnerPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("detalhe de equipamento: %w", err)
	}
	return &d, nil
}

// Update patches only the supplied fields, scoped to (id, owner_id). Zero
// matched rows means missing or not owned; callers report both the same
// way.
func (r *EquipmentRepository) Update(ctx context.Context, id, ownerID string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	sets := map[string]any{}
	if patch.Type != nil {
		sets["type"] = *patch.Type
	}
	if patch.Brand != nil {
		sets["brand"] = *patch.Brand
	}
	if patch.Model != nil {
		sets["model"] = *patch.Model
	}
	if patch.Year != nil {
		sets["year"] = *patch.Year
	}
	if patch.Condition != nil {
		sets["condition"] = *patch.Condition
	}
	if patch.Price != nil {
		sets["price"] = utils.FormatPrice(*patch.Price)
	}
	if patch.City != nil {
		sets["city"] = *patch.City
	}
	if patch.State != nil {
		sets["state"] = *patch.State
	}
	if patch.Description != nil {
		sets["description"] = *patch.Description
	}
	if patch.IsActive != nil {
		sets["is_active"] = *patch.IsActive
	}

	ownerScope := sq.Eq{"id": id, "owner_id": ownerID}

	if len(sets) == 0 {
		query, args, err := psql.Select(equipmentFieldsBare).From(equipmentTable).Where(ownerScope).ToSql()
		if err != nil {
			return nil, err
		}
		e, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFoundOrForbidden
		}
		return e, err
	}

	query, args, err := psql.Update(equipmentTable).
		SetMap(sets).
		Where(ownerScope).
		Suffix("RETURNING " + equipmentFieldsBare).
		ToSql()
	if err != nil {
		return nil, err
	}

	e, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrNotFoundOrForbidden
	}
	return e, err
}

// Delete hard-deletes a listing scoped to its owner; photos go with it via
// the FK cascade. Returns false when nothing matched.
func (r *EquipmentRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	query, args, err := psql.Delete(equipmentTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("removendo equipamento: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
