package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	proposalModel "github.com/openscholar/review-service/internal/proposal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&proposalModel.Proposal{})
	require.NoError(t, err)

	return db
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new proposal starts as draft", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		p := &proposalModel.Proposal{
			AuthorID:     "a1",
			Title:        "Quantum Error Correction at Scale",
			Abstract:     "We study surface codes.",
			ResearchArea: "Quantum Computing",
		}
		p.SetKeywordList([]string{"quantum", "error correction"})

		created, err := repo.Create(ctx, p)

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, proposalModel.StatusDraft, created.Status)
		assert.Equal(t, []string{"quantum", "error correction"}, created.KeywordList())
	})
}

func TestRepository_MarkSubmitted(t *testing.T) {
	ctx := context.Background()

	t.Run("draft moves to submitted", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		created, err := repo.Create(ctx, &proposalModel.Proposal{AuthorID: "a1", Title: "T"})
		require.NoError(t, err)

		err = repo.MarkSubmitted(ctx, created.ID, time.Now())
		require.NoError(t, err)

		updated, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, proposalModel.StatusSubmitted, updated.Status)
		assert.NotNil(t, updated.SubmittedAt)
	})

	t.Run("second submit is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		created, err := repo.Create(ctx, &proposalModel.Proposal{AuthorID: "a1", Title: "T"})
		require.NoError(t, err)

		require.NoError(t, repo.MarkSubmitted(ctx, created.ID, time.Now()))

		err = repo.MarkSubmitted(ctx, created.ID, time.Now())
		assert.ErrorIs(t, err, proposalModel.ErrAlreadySubmitted)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		err := repo.MarkSubmitted(ctx, "missing", time.Now())
		assert.ErrorIs(t, err, proposalModel.ErrProposalNotFound)
	})
}

func TestRepository_AdvanceToUnderReview(t *testing.T) {
	ctx := context.Background()

	t.Run("submitted moves to under_review", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		created, err := repo.Create(ctx, &proposalModel.Proposal{AuthorID: "a1", Title: "T"})
		require.NoError(t, err)
		require.NoError(t, repo.MarkSubmitted(ctx, created.ID, time.Now()))

		require.NoError(t, repo.AdvanceToUnderReview(ctx, created.ID))

		updated, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, proposalModel.StatusUnderReview, updated.Status)
	})

	t.Run("repeat advance is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		created, err := repo.Create(ctx, &proposalModel.Proposal{AuthorID: "a1", Title: "T"})
		require.NoError(t, err)
		require.NoError(t, repo.MarkSubmitted(ctx, created.ID, time.Now()))
		require.NoError(t, repo.AdvanceToUnderReview(ctx, created.ID))

		require.NoError(t, repo.AdvanceToUnderReview(ctx, created.ID))

		updated, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, proposalModel.StatusUnderReview, updated.Status)
	})

	t.Run("draft is left untouched", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		created, err := repo.Create(ctx, &proposalModel.Proposal{AuthorID: "a1", Title: "T"})
		require.NoError(t, err)

		require.NoError(t, repo.AdvanceToUnderReview(ctx, created.ID))

		updated, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, proposalModel.StatusDraft, updated.Status)
	})
}

func TestRepository_SetDecision(t *testing.T) {
	ctx := context.Background()

	t.Run("records decision and notes", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		created, err := repo.Create(ctx, &proposalModel.Proposal{AuthorID: "a1", Title: "T"})
		require.NoError(t, err)
		require.NoError(t, repo.MarkSubmitted(ctx, created.ID, time.Now()))

		err = repo.SetDecision(ctx, created.ID, proposalModel.StatusAccepted, "fund it", time.Now())
		require.NoError(t, err)

		updated, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, proposalModel.StatusAccepted, updated.Status)
		assert.Equal(t, "fund it", updated.AdminNotes)
		assert.NotNil(t, updated.ReviewedAt)
	})

	t.Run("draft cannot be decided", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		created, err := repo.Create(ctx, &proposalModel.Proposal{AuthorID: "a1", Title: "T"})
		require.NoError(t, err)

		err = repo.SetDecision(ctx, created.ID, proposalModel.StatusAccepted, "", time.Now())
		assert.ErrorIs(t, err, proposalModel.ErrStillDraft)

		untouched, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, proposalModel.StatusDraft, untouched.Status)
		assert.Nil(t, untouched.SubmittedAt)
		assert.Nil(t, untouched.ReviewedAt)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		err := repo.SetDecision(ctx, "missing", proposalModel.StatusAccepted, "", time.Now())
		assert.ErrorIs(t, err, proposalModel.ErrProposalNotFound)
	})
}

func TestRepository_Listing(t *testing.T) {
	ctx := context.Background()

	t.Run("by author and by status", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db)

		first, err := repo.Create(ctx, &proposalModel.Proposal{AuthorID: "a1", Title: "One"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &proposalModel.Proposal{AuthorID: "a2", Title: "Two"})
		require.NoError(t, err)
		require.NoError(t, repo.MarkSubmitted(ctx, first.ID, time.Now()))

		byAuthor, err := repo.ListByAuthor(ctx, "a1")
		require.NoError(t, err)
		assert.Len(t, byAuthor, 1)

		drafts, err := repo.ListByStatus(ctx, proposalModel.StatusDraft)
		require.NoError(t, err)
		assert.Len(t, drafts, 1)
		assert.Equal(t, "Two", drafts[0].Title)
	})
}
