// Package repository provides data access layer for revisions.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openscholar/review-service/internal/revision/model"
)

// Repository defines the interface for revision data access.
type Repository interface {
	Create(ctx context.Context, revision *model.Revision) error
	GetByID(ctx context.Context, id string) (*model.Revision, error)
	ListByPaper(ctx context.Context, paperID string) ([]model.Revision, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new revision repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a revision with the next version number for its paper.
// The version is read as 1+max inside the insert attempt; a concurrent
// submitter racing to the same number trips the (paper_id, version_number)
// unique index, in which case the insert is retried once with a fresh
// version.
func (r *repository) Create(ctx context.Context, revision *model.Revision) error {
	if revision.ID == "" {
		revision.ID = uuid.NewString()
	}
	now := time.Now()
	revision.CreatedAt = now
	revision.UpdatedAt = now

	for attempt := 0; attempt < 2; attempt++ {
		version, err := r.nextVersion(ctx, revision.PaperID)
		if err != nil {
			return err
		}
		revision.VersionNumber = version

		err = r.db.WithContext(ctx).Create(revision).Error
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
	}
	return errors.New("revision version conflict persisted after retry")
}

func (r *repository) nextVersion(ctx context.Context, paperID string) (int, error) {
	var current int
	err := r.db.WithContext(ctx).
		Model(&model.Revision{}).
		Where("paper_id = ?", paperID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&current).Error
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}

// GetByID retrieves a revision by its ID.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Revision, error) {
	var revision model.Revision
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&revision).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRevisionNotFound
		}
		return nil, err
	}
	return &revision, nil
}

// ListByPaper retrieves all revisions of a paper ordered by version.
func (r *repository) ListByPaper(ctx context.Context, paperID string) ([]model.Revision, error) {
	var revisions []model.Revision
	err := r.db.WithContext(ctx).
		Where("paper_id = ?", paperID).
		Order("version_number ASC").
		Find(&revisions).Error
	if err != nil {
		return nil, err
	}
	return revisions, nil
}

// Update applies a partial update to a revision.
func (r *repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Revision{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrRevisionNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}
