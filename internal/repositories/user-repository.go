package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"agrorent-api/internal/dto"
	"agrorent-api/internal/entities"
	apperrors "agrorent-api/pkg/errors"
)

const userTable = "users"
const userFields = "id, full_name, email, cpf, phone, password_hash, created_at"

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByCPF(ctx context.Context, cpf string) (*entities.User, error)
	UpdateProfile(ctx context.Context, id string, patch dto.UpdateProfileDTO) (*entities.User, error)
}

type UserRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.CPF, &u.Phone, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan de users: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (full_name, email, cpf, phone, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, userTable, userFields)

	row := r.storage.QueryRow(ctx, query, user.FullName, user.Email, user.CPF, user.Phone, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		// A register racing past the pre-check hits the unique constraint;
		// map it to the same duplicate error the pre-check would produce.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, mapUniqueViolation(pgErr)
		}
		return nil, err
	}
	return created, nil
}

func mapUniqueViolation(pgErr *pgconn.PgError) error {
	name := strings.ToLower(pgErr.ConstraintName + " " + pgErr.Detail)
	switch {
	case strings.Contains(name, "email"):
		return apperrors.ErrEmailTaken
	case strings.Contains(name, "cpf"):
		return apperrors.ErrCPFTaken
	default:
		return apperrors.ErrDuplicateRecord
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE email = $1 LIMIT 1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByCPF(ctx context.Context, cpf string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE cpf = $1 LIMIT 1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, cpf))
}

// UpdateProfile applies only the supplied fields; an empty patch degrades
// to a plain fetch.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, patch dto.UpdateProfileDTO) (*entities.User, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if patch.FullName != nil {
		args = append(args, *patch.FullName)
		sets = append(sets, fmt.Sprintf("full_name = $%d", len(args)))
	}
	if patch.Phone != nil {
		args = append(args, *patch.Phone)
		sets = append(sets, fmt.Sprintf("phone = $%d", len(args)))
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		userTable, strings.Join(sets, ", "), len(args), userFields)

	return scanUser(r.storage.QueryRow(ctx, query, args...))
}
