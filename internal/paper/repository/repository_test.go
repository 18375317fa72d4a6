package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	paperModel "github.com/openscholar/review-service/internal/paper/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&paperModel.Paper{})
	require.NoError(t, err)

	return db
}

func TestRepository_EnsureForProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("creates paper under review on first call", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		paper, err := repo.EnsureForProposal(ctx, "prop-1", "Quantum Errors", "a1")

		require.NoError(t, err)
		assert.NotEmpty(t, paper.ID)
		assert.Equal(t, paperModel.StatusUnderReview, paper.Status)
		require.NotNil(t, paper.ProposalID)
		assert.Equal(t, "prop-1", *paper.ProposalID)
	})

	t.Run("repeat ensure returns the existing paper", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		first, err := repo.EnsureForProposal(ctx, "prop-1", "Quantum Errors", "a1")
		require.NoError(t, err)

		second, err := repo.EnsureForProposal(ctx, "prop-1", "Quantum Errors", "a1")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)

		var count int64
		db.Model(&paperModel.Paper{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updates status", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		paper, err := repo.EnsureForProposal(ctx, "prop-1", "T", "a1")
		require.NoError(t, err)

		err = repo.UpdateStatus(ctx, paper.ID, paperModel.StatusPublished)
		require.NoError(t, err)

		updated, err := repo.GetByID(ctx, paper.ID)
		require.NoError(t, err)
		assert.Equal(t, paperModel.StatusPublished, updated.Status)
	})

	t.Run("unknown paper", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		err := repo.UpdateStatus(ctx, "missing", paperModel.StatusPublished)
		assert.ErrorIs(t, err, paperModel.ErrPaperNotFound)
	})
}

func TestRepository_SetCurrentRevision(t *testing.T) {
	ctx := context.Background()

	t.Run("points paper at revision", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		paper, err := repo.EnsureForProposal(ctx, "prop-1", "T", "a1")
		require.NoError(t, err)

		err = repo.SetCurrentRevision(ctx, paper.ID, "rev-1")
		require.NoError(t, err)

		updated, err := repo.GetByID(ctx, paper.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.CurrentRevisionID)
		assert.Equal(t, "rev-1", *updated.CurrentRevisionID)
	})
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"draft to submitted", paperModel.StatusDraft, paperModel.StatusSubmitted, true},
		{"submitted to under review", paperModel.StatusSubmitted, paperModel.StatusUnderReview, true},
		{"under review to published", paperModel.StatusUnderReview, paperModel.StatusPublished, true},
		{"draft straight to published", paperModel.StatusDraft, paperModel.StatusPublished, true},
		{"no going back", paperModel.StatusPublished, paperModel.StatusDraft, false},
		{"same status", paperModel.StatusDraft, paperModel.StatusDraft, false},
		{"published to disputed", paperModel.StatusPublished, paperModel.StatusDisputed, true},
		{"under review to disputed", paperModel.StatusUnderReview, paperModel.StatusDisputed, false},
		{"unknown status", "BOGUS", paperModel.StatusPublished, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paperModel.CanTransition(tt.from, tt.to))
		})
	}
}
