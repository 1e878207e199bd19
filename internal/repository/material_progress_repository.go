package repository

import (
	"errors"

	"github.com/studiva/studiva-backend/internal/model"
	"gorm.io/gorm"
)

// MaterialProgressRepository persists best-progress records per
// (user, material). The recorder's read-max-then-replace sequence must be
// atomic per key, so callers run it inside InTx with FindForUpdate taking
// a per-key advisory lock; different keys never contend.
type MaterialProgressRepository interface {
	InTx(fn func(MaterialProgressRepository) error) error
	FindForUpdate(userID, materialID uint) ([]model.MaterialProgress, error)
	ReplaceAll(userID, materialID uint, rec *model.MaterialProgress) error
	Best(userID, materialID uint) (*model.MaterialProgress, error)
	AllByUser(userID uint) ([]model.MaterialProgress, error)
}

type materialProgressRepository struct {
	db *gorm.DB
}

func NewMaterialProgressRepository(db *gorm.DB) MaterialProgressRepository {
	return &materialProgressRepository{db: db}
}

func (r *materialProgressRepository) InTx(fn func(MaterialProgressRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&materialProgressRepository{db: tx})
	})
}

// FindForUpdate serializes writers on the key before reading. A row lock
// cannot do this: with no row yet there is nothing to lock and concurrent
// writers both insert, and a writer blocked on an occupied key re-reads an
// empty set once the winner's delete+insert commits under read committed.
// The advisory lock is transaction scoped, so it releases with InTx.
func (r *materialProgressRepository) FindForUpdate(userID, materialID uint) ([]model.MaterialProgress, error) {
	if err := r.db.Exec("SELECT pg_advisory_xact_lock(?, ?)", int32(userID), int32(materialID)).Error; err != nil {
		return nil, err
	}
	var recs []model.MaterialProgress
	err := r.db.
		Where("user_id = ? AND material_id = ?", userID, materialID).
		Order("progress DESC, updated_at DESC").
		Find(&recs).Error
	return recs, err
}

// ReplaceAll deletes every record for the key and inserts the new one, so a
// key holds at most one live row afterwards even if duplicates had crept in.
func (r *materialProgressRepository) ReplaceAll(userID, materialID uint, rec *model.MaterialProgress) error {
	if err := r.db.
		Where("user_id = ? AND material_id = ?", userID, materialID).
		Delete(&model.MaterialProgress{}).Error; err != nil {
		return err
	}
	return r.db.Create(rec).Error
}

// Best returns the record with the highest progress, most recent update
// breaking ties, or nil when the user has none for the material.
func (r *materialProgressRepository) Best(userID, materialID uint) (*model.MaterialProgress, error) {
	var rec model.MaterialProgress
	err := r.db.
		Where("user_id = ? AND material_id = ?", userID, materialID).
		Order("progress DESC, updated_at DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *materialProgressRepository) AllByUser(userID uint) ([]model.MaterialProgress, error) {
	var recs []model.MaterialProgress
	err := r.db.
		Where("user_id = ?", userID).
		Order("material_id ASC, progress DESC, updated_at DESC").
		Find(&recs).Error
	return recs, err
}
