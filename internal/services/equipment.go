package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"agrorent-api/internal/dto"
	"agrorent-api/internal/entities"
	"agrorent-api/internal/repositories"
	apperrors "agrorent-api/pkg/errors"
	"agrorent-api/pkg/filestorage"
	"agrorent-api/pkg/utils"
	"agrorent-api/pkg/validation"
)

const photoPathPrefix = "equipments"

type EquipmentServiceInterface interface {
	Search(ctx context.Context, criteria dto.SearchEquipmentDTO) (*dto.SearchResultDTO, error)
	ListAll(ctx context.Context, limit uint64) ([]entities.EquipmentWithCover, error)
	ListMine(ctx context.Context, ownerID string) ([]entities.EquipmentWithCover, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Equipment, error)
	Detail(ctx context.Context, id string) (*entities.EquipmentDetail, error)
	Create(ctx context.Context, ownerID string, payload dto.CreateEquipmentDTO, photos []*multipart.FileHeader) (*dto.CreatedEquipmentDTO, error)
	Update(ctx context.Context, id, ownerID string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	Delete(ctx context.Context, id, ownerID string) error
	AddPhotos(ctx context.Context, equipmentID, ownerID string, photos []*multipart.FileHeader) ([]entities.Photo, error)
	DeletePhoto(ctx context.Context, equipmentID, photoID, ownerID string) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	photoRepo     repositories.PhotoRepositoryInterface
	fileStorage   filestorage.FileStorageInterface
	publicBaseURL string
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	photoRepo repositories.PhotoRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	publicBaseURL string,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		photoRepo:     photoRepo,
		fileStorage:   fileStorage,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// Search normalizes the pagination window, runs the filtered query and
// assembles the envelope. A page past the last one comes back empty with
// the true total. An omitted pageSize means the default; a supplied one is
// clamped into [1, MaxPageSize].
func (s *EquipmentService) Search(ctx context.Context, criteria dto.SearchEquipmentDTO) (*dto.SearchResultDTO, error) {
	pageSize := utils.DefaultPageSize
	if criteria.PageSize != nil {
		pageSize = *criteria.PageSize
	}
	page, pageSize := utils.NormalizePage(criteria.Page, pageSize)

	data, total, err := s.equipmentRepo.Search(ctx, criteria, uint64(pageSize), utils.Offset(page, pageSize))
	if err != nil {
		return nil, err
	}

	return &dto.SearchResultDTO{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: utils.TotalPages(total, pageSize),
	}, nil
}

func (s *EquipmentService) ListAll(ctx context.Context, limit uint64) ([]entities.EquipmentWithCover, error) {
	return s.equipmentRepo.List(ctx, nil, limit)
}

func (s *EquipmentService) ListMine(ctx context.Context, ownerID string) ([]entities.EquipmentWithCover, error) {
	return s.equipmentRepo.List(ctx, &ownerID, 0)
}

func (s *EquipmentService) ListByOwner(ctx context.Context, ownerID string) ([]entities.Equipment, error) {
	return s.equipmentRepo.ListByOwner(ctx, ownerID)
}

func (s *EquipmentService) Detail(ctx context.Context, id string) (*entities.EquipmentDetail, error) {
	detail, err := s.equipmentRepo.DetailWithOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.ListByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Photos = photos
	return detail, nil
}

// Create inserts the listing and stores its photos. At least one photo is
// required, at most five are accepted, and every file is validated before
// anything is written. If a photo write fails after the insert the listing
// stays without that photo; the two steps are deliberately not atomic.
func (s *EquipmentService) Create(ctx context.Context, ownerID string, payload dto.CreateEquipmentDTO, photos []*multipart.FileHeader) (*dto.CreatedEquipmentDTO, error) {
	if err := checkPhotoCount(photos, true); err != nil {
		return nil, err
	}
	if err := validatePhotos(photos); err != nil {
		return nil, err
	}

	var year null.Int
	if payload.Year != nil {
		year = null.IntFrom(*payload.Year)
	}

	created, err := s.equipmentRepo.Create(ctx, &entities.Equipment{
		OwnerID:     ownerID,
		Type:        payload.Type,
		Brand:       payload.Brand,
		Model:       payload.Model,
		Year:        year,
		Condition:   payload.Condition,
		Price:       utils.FormatPrice(payload.Price),
		City:        payload.City,
		State:       null.StringFromPtr(payload.State),
		Description: null.StringFromPtr(payload.Description),
	})
	if err != nil {
		return nil, err
	}

	urls, err := s.storePhotos(photos)
	if err != nil {
		return nil, err
	}

	saved, err := s.photoRepo.AddPhotos(ctx, created.ID, urls)
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipamento criado",
		zap.String("equipmentID", created.ID),
		zap.Int("photos", len(saved)),
	)

	return &dto.CreatedEquipmentDTO{Equipment: *created, Photos: saved}, nil
}

func (s *EquipmentService) Update(ctx context.Context, id, ownerID string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	return s.equipmentRepo.Update(ctx, id, ownerID, patch)
}

func (s *EquipmentService) Delete(ctx context.Context, id, ownerID string) error {
	ok, err := s.equipmentRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFoundOrForbidden
	}
	return nil
}

// AddPhotos appends up to five photos to a listing the caller owns.
func (s *EquipmentService) AddPhotos(ctx context.Context, equipmentID, ownerID string, photos []*multipart.FileHeader) ([]entities.Photo, error) {
	if err := checkPhotoCount(photos, true); err != nil {
		return nil, err
	}
	if err := validatePhotos(photos); err != nil {
		return nil, err
	}

	if err := s.requireOwnership(ctx, equipmentID, ownerID); err != nil {
		return nil, err
	}

	urls, err := s.storePhotos(photos)
	if err != nil {
		return nil, err
	}
	return s.photoRepo.AddPhotos(ctx, equipmentID, urls)
}

// DeletePhoto removes one photo after confirming the caller owns the
// parent listing; the photo id alone is never enough.
func (s *EquipmentService) DeletePhoto(ctx context.Context, equipmentID, photoID, ownerID string) error {
	if err := s.requireOwnership(ctx, equipmentID, ownerID); err != nil {
		return err
	}

	photo, err := s.photoRepo.FindByID(ctx, photoID, equipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFoundOrForbidden
		}
		return err
	}

	ok, err := s.photoRepo.Delete(ctx, photoID, equipmentID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFoundOrForbidden
	}

	if err := s.fileStorage.Delete(photo.URL); err != nil {
		// The row is already gone; an orphan file is only worth a warning.
		s.logger.Warn("não foi possível remover arquivo da foto",
			zap.String("url", photo.URL), zap.Error(err))
	}
	return nil
}

// requireOwnership answers with the indistinguishable not-found-or-forbidden
// error both when the listing does not exist and when it belongs to someone
// else.
func (s *EquipmentService) requireOwnership(ctx context.Context, equipmentID, ownerID string) error {
	equipment, err := s.equipmentRepo.ByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFoundOrForbidden
		}
		return err
	}
	if equipment.OwnerID != ownerID {
		return apperrors.ErrNotFoundOrForbidden
	}
	return nil
}

func checkPhotoCount(photos []*multipart.FileHeader, required bool) error {
	if required && len(photos) == 0 {
		return apperrors.ErrPhotoRequired
	}
	if len(photos) > validation.MaxPhotosPerUpload {
		return apperrors.ErrTooManyPhotos
	}
	return nil
}

func validatePhotos(photos []*multipart.FileHeader) error {
	for _, fh := range photos {
		src, err := fh.Open()
		if err != nil {
			return fmt.Errorf("abrindo arquivo %q: %w", fh.Filename, err)
		}
		err = validation.ValidateImage(fh, src)
		src.Close()
		if err != nil {
			return apperrors.NewBadRequestError(err.Error())
		}
	}
	return nil
}

func (s *EquipmentService) storePhotos(photos []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(photos))
	for _, fh := range photos {
		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("abrindo arquivo %q: %w", fh.Filename, err)
		}
		relPath, err := s.fileStorage.Save(src, fh.Filename, photoPathPrefix)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("salvando arquivo %q: %w", fh.Filename, err)
		}
		urls = append(urls, s.publicURL(relPath))
	}
	return urls, nil
}

func (s *EquipmentService) publicURL(relPath string) string {
	base := strings.TrimSuffix(s.publicBaseURL, "/")
	return base + "/uploads/" + relPath
}
