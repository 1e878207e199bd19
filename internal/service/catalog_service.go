package service

import (
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/repository"
)

// CatalogService exposes the read side of the content catalog.
type CatalogService interface {
	ListModules() ([]dto.ModuleResponse, error)
	GetModule(id uint) (*dto.ModuleResponse, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListModules() ([]dto.ModuleResponse, error) {
	modules, err := s.catalogRepo.FindAllModules()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list modules")
		return nil, err
	}
	out := make([]dto.ModuleResponse, 0, len(modules))
	for i := range modules {
		var resp dto.ModuleResponse
		if err := copier.Copy(&resp, &modules[i]); err != nil {
			return nil, err
		}
		fillQuestionCounts(&resp)
		out = append(out, resp)
	}
	return out, nil
}

func (s *catalogService) GetModule(id uint) (*dto.ModuleResponse, error) {
	module, err := s.catalogRepo.FindModuleByID(id)
	if err != nil {
		return nil, err
	}
	var resp dto.ModuleResponse
	if err := copier.Copy(&resp, module); err != nil {
		return nil, err
	}
	fillQuestionCounts(&resp)
	return &resp, nil
}

func fillQuestionCounts(m *dto.ModuleResponse) {
	for i := range m.Challenges {
		m.Challenges[i].QuestionCount = len(m.Challenges[i].Questions)
	}
}
