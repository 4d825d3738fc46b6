package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agrorent-api/internal/dto"
	"agrorent-api/internal/entities"
	"agrorent-api/pkg/contextkeys"
)

type mockEquipmentService struct {
	searchFn      func(ctx context.Context, criteria dto.SearchEquipmentDTO) (*dto.SearchResultDTO, error)
	listAllFn     func(ctx context.Context, limit uint64) ([]entities.EquipmentWithCover, error)
	listMineFn    func(ctx context.Context, ownerID string) ([]entities.EquipmentWithCover, error)
	listByOwnerFn func(ctx context.Context, ownerID string) ([]entities.Equipment, error)
	detailFn      func(ctx context.Context, id string) (*entities.EquipmentDetail, error)
	createFn      func(ctx context.Context, ownerID string, payload dto.CreateEquipmentDTO, photos []*multipart.FileHeader) (*dto.CreatedEquipmentDTO, error)
	updateFn      func(ctx context.Context, id, ownerID string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	deleteFn      func(ctx context.Context, id, ownerID string) error
	addPhotosFn   func(ctx context.Context, equipmentID, ownerID string, photos []*multipart.FileHeader) ([]entities.Photo, error)
	deletePhotoFn func(ctx context.Context, equipmentID, photoID, ownerID string) error
}

func (m *mockEquipmentService) Search(ctx context.Context, criteria dto.SearchEquipmentDTO) (*dto.SearchResultDTO, error) {
	return m.searchFn(ctx, criteria)
}
func (m *mockEquipmentService) ListAll(ctx context.Context, limit uint64) ([]entities.EquipmentWithCover, error) {
	return m.listAllFn(ctx, limit)
}
func (m *mockEquipmentService) ListMine(ctx context.Context, ownerID string) ([]entities.EquipmentWithCover, error) {
	return m.listMineFn(ctx, ownerID)
}
func (m *mockEquipmentService) ListByOwner(ctx context.Context, ownerID string) ([]entities.Equipment, error) {
	return m.listByOwnerFn(ctx, ownerID)
}
func (m *mockEquipmentService) Detail(ctx context.Context, id string) (*entities.EquipmentDetail, error) {
	return m.detailFn(ctx, id)
}
func (m *mockEquipmentService) Create(ctx context.Context, ownerID string, payload dto.CreateEquipmentDTO, photos []*multipart.FileHeader) (*dto.CreatedEquipmentDTO, error) {
	return m.createFn(ctx, ownerID, payload, photos)
}
func (m *mockEquipmentService) Update(ctx context.Context, id, ownerID string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	return m.updateFn(ctx, id, ownerID, patch)
}
func (m *mockEquipmentService) Delete(ctx context.Context, id, ownerID string) error {
	return m.deleteFn(ctx, id, ownerID)
}
func (m *mockEquipmentService) AddPhotos(ctx context.Context, equipmentID, ownerID string, photos []*multipart.FileHeader) ([]entities.Photo, error) {
	return m.addPhotosFn(ctx, equipmentID, ownerID, photos)
}
func (m *mockEquipmentService) DeletePhoto(ctx context.Context, equipmentID, photoID, ownerID string) error {
	return m.deletePhotoFn(ctx, equipmentID, photoID, ownerID)
}

func listRequest(target string, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if userID != "" {
		ctx := context.WithValue(req.Context(), contextkeys.UserIDKey, userID)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListDefaultsToHundredItems(t *testing.T) {
	var gotLimit uint64
	svc := &mockEquipmentService{
		listAllFn: func(ctx context.Context, limit uint64) ([]entities.EquipmentWithCover, error) {
			gotLimit = limit
			return []entities.EquipmentWithCover{}, nil
		},
	}
	ctrl := NewEquipmentController(svc, zap.NewNop())

	c, rec := listRequest("/equipments", "")
	require.NoError(t, ctrl.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(100), gotLimit)
}

func TestListHonorsLimitParam(t *testing.T) {
	var gotLimit uint64
	svc := &mockEquipmentService{
		listAllFn: func(ctx context.Context, limit uint64) ([]entities.EquipmentWithCover, error) {
			gotLimit = limit
			return []entities.EquipmentWithCover{}, nil
		},
	}
	ctrl := NewEquipmentController(svc, zap.NewNop())

	c, rec := listRequest("/equipments?limit=5", "")
	require.NoError(t, ctrl.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(5), gotLimit)
}

func TestListMineAcceptsBothFlagSpellings(t *testing.T) {
	for _, flag := range []string{"1", "true"} {
		t.Run("mine="+flag, func(t *testing.T) {
			var gotOwner string
			svc := &mockEquipmentService{
				listMineFn: func(ctx context.Context, ownerID string) ([]entities.EquipmentWithCover, error) {
					gotOwner = ownerID
					return []entities.EquipmentWithCover{}, nil
				},
			}
			ctrl := NewEquipmentController(svc, zap.NewNop())

			c, rec := listRequest("/equipments?mine="+flag, "user-42")
			require.NoError(t, ctrl.List(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "user-42", gotOwner)
		})
	}
}

func TestListMineWithoutTokenIsUnauthorized(t *testing.T) {
	ctrl := NewEquipmentController(&mockEquipmentService{}, zap.NewNop())

	for _, flag := range []string{"1", "true"} {
		c, rec := listRequest("/equipments?mine="+flag, "")
		require.NoError(t, ctrl.List(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}
