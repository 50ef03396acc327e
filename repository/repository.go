package repository

import (
	"errors"

	"stayhub/apperrors"

	"gorm.io/gorm"
)

// Repository is generic storage-backed CRUD over a single entity type.
// Every mutating call commits immediately; a missing target id is a
// distinct outcome (NotFound) from a validation failure.
type Repository[T any] struct {
	db          *gorm.DB
	name        string
	conflictMsg string
}

func New[T any](db *gorm.DB, name, conflictMsg string) *Repository[T] {
	return &Repository[T]{db: db, name: name, conflictMsg: conflictMsg}
}

// Add persists a constructed entity. The id is pre-assigned by the entity
// constructor. A unique-constraint violation from a racing writer surfaces
// as the same Conflict the facade's precheck would have produced.
func (r *Repository[T]) Add(entity *T) error {
	if err := r.db.Create(entity).Error; err != nil {
		return r.translate(err)
	}
	return nil
}

func (r *Repository[T]) Get(id string) (*T, error) {
	entity := new(T)
	if err := r.db.First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(r.name)
		}
		return nil, err
	}
	return entity, nil
}

// Save persists an already-validated in-memory mutation. GORM refreshes
// updated_at on the way out.
func (r *Repository[T]) Save(entity *T) error {
	if err := r.db.Save(entity).Error; err != nil {
		return r.translate(err)
	}
	return nil
}

func (r *Repository[T]) Delete(id string) error {
	res := r.db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(r.name)
	}
	return nil
}

// ListAll returns every stored entity. Order is not contractual.
func (r *Repository[T]) ListAll() ([]T, error) {
	var entities []T
	if err := r.db.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *Repository[T]) translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict(r.conflictMsg)
	}
	return err
}
