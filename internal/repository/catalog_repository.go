package repository

import (
	"errors"

	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/model"
	"gorm.io/gorm"
)

// CatalogRepository is the read side of the content catalog: modules with
// their nested materials and challenges down to candidate answers.
type CatalogRepository interface {
	FindAllModules() ([]model.Module, error)
	FindModuleByID(id uint) (*model.Module, error)
	FindMaterialByID(id uint) (*model.Material, error)
	FindChallengeByID(id uint) (*model.Challenge, error)
	FindQuestionByID(id uint) (*model.Question, error)
	FindAnswerByID(id uint) (*model.Answer, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FindAllModules() ([]model.Module, error) {
	var modules []model.Module
	err := r.db.
		Preload("Materials").
		Preload("Challenges.Questions.Answers").
		Order("modules.created_at ASC").
		Find(&modules).Error
	return modules, err
}

func (r *catalogRepository) FindModuleByID(id uint) (*model.Module, error) {
	var module model.Module
	err := r.db.
		Preload("Materials").
		Preload("Challenges.Questions.Answers").
		First(&module, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("module %d", id)
	}
	return &module, err
}

func (r *catalogRepository) FindMaterialByID(id uint) (*model.Material, error) {
	var material model.Material
	err := r.db.First(&material, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("material %d", id)
	}
	return &material, err
}

func (r *catalogRepository) FindChallengeByID(id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	err := r.db.Preload("Questions").First(&challenge, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("challenge %d", id)
	}
	return &challenge, err
}

func (r *catalogRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Answers").First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("question %d", id)
	}
	return &question, err
}

func (r *catalogRepository) FindAnswerByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.First(&answer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("answer %d", id)
	}
	return &answer, err
}
