package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agrorent-api/internal/dto"
	"agrorent-api/internal/entities"
	"agrorent-api/pkg/config"
	apperrors "agrorent-api/pkg/errors"
	"agrorent-api/pkg/service"
	"agrorent-api/pkg/utils"
)

type mockUserRepo struct {
	createFn        func(ctx context.Context, user *entities.User) (*entities.User, error)
	findByIDFn      func(ctx context.Context, id string) (*entities.User, error)
	findByEmailFn   func(ctx context.Context, email string) (*entities.User, error)
	findByCPFFn     func(ctx context.Context, cpf string) (*entities.User, error)
	updateProfileFn func(ctx context.Context, id string, patch dto.UpdateProfileDTO) (*entities.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindByCPF(ctx context.Context, cpf string) (*entities.User, error) {
	return m.findByCPFFn(ctx, cpf)
}
func (m *mockUserRepo) UpdateProfile(ctx context.Context, id string, patch dto.UpdateProfileDTO) (*entities.User, error) {
	return m.updateProfileFn(ctx, id, patch)
}

// mockCache is an in-memory stand-in for the redis counter store.
type mockCache struct {
	values map[string]int64
}

func newMockCache() *mockCache {
	return &mockCache{values: map[string]int64{}}
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := m.values[key]; ok {
		return strconv.FormatInt(v, 10), nil
	}
	return "", nil
}
func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}
func (m *mockCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}
func (m *mockCache) Incr(ctx context.Context, key string) (int64, error) {
	m.values[key]++
	return m.values[key], nil
}
func (m *mockCache) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return true, nil
}

func newAuthService(userRepo *mockUserRepo, cache *mockCache) AuthServiceInterface {
	cfg := &config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: 15 * time.Minute}
	jwtSvc := service.NewJWTService("segredo-de-teste", 15*time.Minute)
	return NewAuthService(userRepo, cache, jwtSvc, cfg, zap.NewNop())
}

func notFoundUserRepo() *mockUserRepo {
	return &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entities.User, error) {
			return nil, apperrors.ErrNotFound
		},
		findByCPFFn: func(ctx context.Context, cpf string) (*entities.User, error) {
			return nil, apperrors.ErrNotFound
		},
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := notFoundUserRepo()
	repo.createFn = func(ctx context.Context, user *entities.User) (*entities.User, error) {
		assert.Equal(t, "52998224725", user.CPF)
		assert.NotEmpty(t, user.PasswordHash)
		created := *user
		created.ID = "3f1c9b52-0b2e-4d55-9e0b-9c1d2c3e4f5a"
		return &created, nil
	}

	svc := newAuthService(repo, newMockCache())
	token, err := svc.Register(context.Background(), dto.RegisterDTO{
		FullName: "João Pereira",
		Email:    "joao@example.com",
		CPF:      "529.982.247-25",
		Password: "senha-forte",
	})
	require.NoError(t, err)

	claims, err := service.NewJWTService("segredo-de-teste", 15*time.Minute).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "3f1c9b52-0b2e-4d55-9e0b-9c1d2c3e4f5a", claims.Subject)
	assert.Equal(t, "joao@example.com", claims.Email)
}

func TestRegisterRejectsInvalidCPF(t *testing.T) {
	svc := newAuthService(notFoundUserRepo(), newMockCache())

	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		FullName: "João Pereira",
		Email:    "joao@example.com",
		CPF:      "11111111111",
		Password: "senha-forte",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCPF)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := notFoundUserRepo()
	repo.findByEmailFn = func(ctx context.Context, email string) (*entities.User, error) {
		return &entities.User{ID: "existente"}, nil
	}

	svc := newAuthService(repo, newMockCache())
	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		FullName: "João Pereira",
		Email:    "joao@example.com",
		CPF:      "52998224725",
		Password: "senha-forte",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestRegisterRejectsDuplicateCPF(t *testing.T) {
	repo := notFoundUserRepo()
	repo.findByCPFFn = func(ctx context.Context, cpf string) (*entities.User, error) {
		return &entities.User{ID: "existente"}, nil
	}

	svc := newAuthService(repo, newMockCache())
	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		FullName: "João Pereira",
		Email:    "joao@example.com",
		CPF:      "52998224725",
		Password: "senha-forte",
	})
	assert.ErrorIs(t, err, apperrors.ErrCPFTaken)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := utils.HashPassword("senha-correta")
	require.NoError(t, err)

	repo := notFoundUserRepo()
	repo.findByEmailFn = func(ctx context.Context, email string) (*entities.User, error) {
		return &entities.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
	}

	svc := newAuthService(repo, newMockCache())
	token, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "joao@example.com",
		Password: "senha-correta",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginSameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("senha-correta")
	require.NoError(t, err)

	unknown := notFoundUserRepo()
	svcUnknown := newAuthService(unknown, newMockCache())
	_, errUnknown := svcUnknown.Login(context.Background(), dto.LoginDTO{
		Email:    "ninguem@example.com",
		Password: "qualquer",
	})

	known := notFoundUserRepo()
	known.findByEmailFn = func(ctx context.Context, email string) (*entities.User, error) {
		return &entities.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
	}
	svcKnown := newAuthService(known, newMockCache())
	_, errWrongPass := svcKnown.Login(context.Background(), dto.LoginDTO{
		Email:    "joao@example.com",
		Password: "senha-errada",
	})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
}

func TestLoginLockoutAfterMaxAttempts(t *testing.T) {
	hash, err := utils.HashPassword("senha-correta")
	require.NoError(t, err)

	repo := notFoundUserRepo()
	repo.findByEmailFn = func(ctx context.Context, email string) (*entities.User, error) {
		return &entities.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
	}

	cache := newMockCache()
	svc := newAuthService(repo, cache)
	payload := dto.LoginDTO{Email: "joao@example.com", Password: "senha-errada"}

	for i := 0; i < 3; i++ {
		_, err := svc.Login(context.Background(), payload)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// fourth attempt hits the counter even with the right password
	_, err = svc.Login(context.Background(), dto.LoginDTO{
		Email:    "joao@example.com",
		Password: "senha-correta",
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 429, httpErr.Code)
}

func TestLoginClearsCounterOnSuccess(t *testing.T) {
	hash, err := utils.HashPassword("senha-correta")
	require.NoError(t, err)

	repo := notFoundUserRepo()
	repo.findByEmailFn = func(ctx context.Context, email string) (*entities.User, error) {
		return &entities.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
	}

	cache := newMockCache()
	svc := newAuthService(repo, cache)

	_, err = svc.Login(context.Background(), dto.LoginDTO{Email: "joao@example.com", Password: "errada"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), dto.LoginDTO{Email: "joao@example.com", Password: "senha-correta"})
	require.NoError(t, err)

	assert.Empty(t, cache.values)
}
