package service

import (
	"github.com/rs/zerolog/log"
	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/model"
	"github.com/studiva/studiva-backend/internal/repository"
)

// ProgressService is the progress recorder. Progress only moves up: lower
// or equal reports are silent no-ops, and once a material is completed its
// record is frozen for good. Every call returns the authoritative record,
// so callers can treat it as idempotent-or-informative.
type ProgressService interface {
	RecordProgress(userID, materialID uint, progress float64) (*dto.ProgressResponse, error)
	GetProgress(userID, materialID uint) (*dto.ProgressResponse, error)
}

type progressService struct {
	catalogRepo  repository.CatalogRepository
	progressRepo repository.MaterialProgressRepository
}

func NewProgressService(catalogRepo repository.CatalogRepository, progressRepo repository.MaterialProgressRepository) ProgressService {
	return &progressService{catalogRepo: catalogRepo, progressRepo: progressRepo}
}

func (s *progressService) RecordProgress(userID, materialID uint, progress float64) (*dto.ProgressResponse, error) {
	if progress < 0 || progress > 100 {
		return nil, apperror.Validationf("progress %v outside [0,100]", progress)
	}
	if _, err := s.catalogRepo.FindMaterialByID(materialID); err != nil {
		return nil, err
	}

	var result model.MaterialProgress
	err := s.progressRepo.InTx(func(repo repository.MaterialProgressRepository) error {
		existing, err := repo.FindForUpdate(userID, materialID)
		if err != nil {
			return err
		}

		// Frozen after completion: the completed record always wins.
		for _, rec := range existing {
			if rec.Completed {
				result = rec
				return nil
			}
		}

		if len(existing) > 0 && progress <= existing[0].Progress {
			// Not an improvement; report the most recently updated record.
			result = existing[0]
			for _, rec := range existing[1:] {
				if rec.UpdatedAt.After(result.UpdatedAt) {
					result = rec
				}
			}
			return nil
		}

		rec := model.MaterialProgress{
			UserID:     userID,
			MaterialID: materialID,
			Progress:   progress,
			Completed:  progress >= model.CompletionThreshold,
		}
		if err := repo.ReplaceAll(userID, materialID, &rec); err != nil {
			return err
		}
		result = rec
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("materialID", materialID).Msg("Failed to record material progress")
		return nil, err
	}
	return &dto.ProgressResponse{Progress: result.Progress, Completed: result.Completed}, nil
}

func (s *progressService) GetProgress(userID, materialID uint) (*dto.ProgressResponse, error) {
	rec, err := s.progressRepo.Best(userID, materialID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		// Absence is a valid state, not an error.
		return &dto.ProgressResponse{Progress: 0, Completed: false}, nil
	}
	return &dto.ProgressResponse{Progress: rec.Progress, Completed: rec.Completed}, nil
}
