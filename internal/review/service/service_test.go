package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	assignmentModel "github.com/openscholar/review-service/internal/assignment/model"
	"github.com/openscholar/review-service/internal/notification"
	paperModel "github.com/openscholar/review-service/internal/paper/model"
	reviewModel "github.com/openscholar/review-service/internal/review/model"
	userModel "github.com/openscholar/review-service/internal/user/model"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Upsert(ctx context.Context, review *reviewModel.Review) (*reviewModel.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviewModel.Review), args.Error(1)
}

func (m *mockReviewRepo) GetByPaperAndReviewer(ctx context.Context, paperID, reviewerID string) (*reviewModel.Review, error) {
	args := m.Called(ctx, paperID, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviewModel.Review), args.Error(1)
}

func (m *mockReviewRepo) ListByPaper(ctx context.Context, paperID string) ([]reviewModel.Review, error) {
	args := m.Called(ctx, paperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reviewModel.Review), args.Error(1)
}

type mockAssignmentRepo struct {
	mock.Mock
}

func (m *mockAssignmentRepo) Upsert(ctx context.Context, a *assignmentModel.ReviewerAssignment) (*assignmentModel.ReviewerAssignment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignmentModel.ReviewerAssignment), args.Error(1)
}

func (m *mockAssignmentRepo) GetByID(ctx context.Context, assignmentID string) (*assignmentModel.ReviewerAssignment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignmentModel.ReviewerAssignment), args.Error(1)
}

func (m *mockAssignmentRepo) GetByPaperAndEmail(ctx context.Context, paperID, reviewerEmail string) (*assignmentModel.ReviewerAssignment, error) {
	args := m.Called(ctx, paperID, reviewerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignmentModel.ReviewerAssignment), args.Error(1)
}

func (m *mockAssignmentRepo) ListByPaper(ctx context.Context, paperID string) ([]assignmentModel.ReviewerAssignment, error) {
	args := m.Called(ctx, paperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]assignmentModel.ReviewerAssignment), args.Error(1)
}

func (m *mockAssignmentRepo) SetResponse(ctx context.Context, assignmentID, status string, acceptedAt *time.Time) error {
	args := m.Called(ctx, assignmentID, status, acceptedAt)
	return args.Error(0)
}

func (m *mockAssignmentRepo) Complete(ctx context.Context, paperID, reviewerEmail, reviewID string, completedAt time.Time) error {
	args := m.Called(ctx, paperID, reviewerEmail, reviewID, completedAt)
	return args.Error(0)
}

type mockPaperRepo struct {
	mock.Mock
}

func (m *mockPaperRepo) Create(ctx context.Context, paper *paperModel.Paper) (*paperModel.Paper, error) {
	args := m.Called(ctx, paper)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paperModel.Paper), args.Error(1)
}

func (m *mockPaperRepo) GetByID(ctx context.Context, paperID string) (*paperModel.Paper, error) {
	args := m.Called(ctx, paperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paperModel.Paper), args.Error(1)
}

func (m *mockPaperRepo) GetByProposalID(ctx context.Context, proposalID string) (*paperModel.Paper, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paperModel.Paper), args.Error(1)
}

func (m *mockPaperRepo) EnsureForProposal(ctx context.Context, proposalID, title, authorID string) (*paperModel.Paper, error) {
	args := m.Called(ctx, proposalID, title, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paperModel.Paper), args.Error(1)
}

func (m *mockPaperRepo) UpdateStatus(ctx context.Context, paperID, status string) error {
	args := m.Called(ctx, paperID, status)
	return args.Error(0)
}

func (m *mockPaperRepo) SetCurrentRevision(ctx context.Context, paperID, revisionID string) error {
	args := m.Called(ctx, paperID, revisionID)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID string) (*userModel.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*userModel.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, recipient, kind string, data notification.Data) error {
	args := m.Called(ctx, recipient, kind, data)
	return args.Error(0)
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	paper := &paperModel.Paper{
		ID:       "paper-1",
		Title:    "Quantum Errors",
		AuthorID: "a1",
		Status:   paperModel.StatusUnderReview,
	}
	reviewer := &userModel.User{
		ID:    "r1",
		Email: "reviewer@example.com",
		Role:  userModel.RoleReviewer,
	}
	author := &userModel.User{
		ID:    "a1",
		Email: "author@example.com",
		Role:  userModel.RoleAuthor,
	}

	validReq := func() *reviewModel.SubmitReviewRequest {
		return &reviewModel.SubmitReviewRequest{
			ActorID:         "r1",
			Content:         "thorough and convincing",
			Recommendation:  reviewModel.RecommendAccept,
			ConfidenceLevel: reviewModel.ConfidenceHigh,
		}
	}

	t.Run("success completes the assignment", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		assignmentRepo := new(mockAssignmentRepo)
		paperRepo := new(mockPaperRepo)
		userRepo := new(mockUserRepo)
		notifier := new(mockNotifier)
		svc := New(reviewRepo, assignmentRepo, paperRepo, userRepo, notifier, zap.NewNop().Sugar())

		paperRepo.On("GetByID", ctx, "paper-1").Return(paper, nil)
		userRepo.On("GetByID", ctx, "r1").Return(reviewer, nil)
		assignmentRepo.On("GetByPaperAndEmail", ctx, "paper-1", "reviewer@example.com").
			Return(&assignmentModel.ReviewerAssignment{ID: "as-1"}, nil)
		reviewRepo.On("Upsert", ctx, mock.AnythingOfType("*model.Review")).
			Return(&reviewModel.Review{
				ID:             "rev-1",
				PaperID:        "paper-1",
				ReviewerID:     "r1",
				Recommendation: reviewModel.RecommendAccept,
			}, nil)
		assignmentRepo.On("Complete", ctx, "paper-1", "reviewer@example.com", "rev-1", mock.Anything).
			Return(nil)
		userRepo.On("GetByID", ctx, "a1").Return(author, nil)
		notifier.On("Notify", ctx, "author@example.com", notification.KindReviewSubmitted, mock.Anything).
			Return(nil)

		review, err := svc.Submit(ctx, "paper-1", validReq())

		require.NoError(t, err)
		assert.Equal(t, "rev-1", review.ID)
		assignmentRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("unassigned reviewer is forbidden", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		assignmentRepo := new(mockAssignmentRepo)
		paperRepo := new(mockPaperRepo)
		userRepo := new(mockUserRepo)
		svc := New(reviewRepo, assignmentRepo, paperRepo, userRepo, new(mockNotifier), zap.NewNop().Sugar())

		paperRepo.On("GetByID", ctx, "paper-1").Return(paper, nil)
		userRepo.On("GetByID", ctx, "r1").Return(reviewer, nil)
		assignmentRepo.On("GetByPaperAndEmail", ctx, "paper-1", "reviewer@example.com").
			Return(nil, assignmentModel.ErrAssignmentNotFound)

		review, err := svc.Submit(ctx, "paper-1", validReq())

		assert.Nil(t, review)
		assert.ErrorIs(t, err, reviewModel.ErrNotAssigned)
		reviewRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("assignment lookup failure is not forbidden", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		assignmentRepo := new(mockAssignmentRepo)
		paperRepo := new(mockPaperRepo)
		userRepo := new(mockUserRepo)
		svc := New(reviewRepo, assignmentRepo, paperRepo, userRepo, new(mockNotifier), zap.NewNop().Sugar())

		dbErr := errors.New("connection reset")
		paperRepo.On("GetByID", ctx, "paper-1").Return(paper, nil)
		userRepo.On("GetByID", ctx, "r1").Return(reviewer, nil)
		assignmentRepo.On("GetByPaperAndEmail", ctx, "paper-1", "reviewer@example.com").
			Return(nil, dbErr)

		review, err := svc.Submit(ctx, "paper-1", validReq())

		assert.Nil(t, review)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, reviewModel.ErrNotAssigned)
	})

	t.Run("notification failure does not fail submission", func(t *testing.T) {
		reviewRepo := new(mockReviewRepo)
		assignmentRepo := new(mockAssignmentRepo)
		paperRepo := new(mockPaperRepo)
		userRepo := new(mockUserRepo)
		notifier := new(mockNotifier)
		svc := New(reviewRepo, assignmentRepo, paperRepo, userRepo, notifier, zap.NewNop().Sugar())

		paperRepo.On("GetByID", ctx, "paper-1").Return(paper, nil)
		userRepo.On("GetByID", ctx, "r1").Return(reviewer, nil)
		assignmentRepo.On("GetByPaperAndEmail", ctx, "paper-1", "reviewer@example.com").
			Return(&assignmentModel.ReviewerAssignment{ID: "as-1"}, nil)
		reviewRepo.On("Upsert", ctx, mock.AnythingOfType("*model.Review")).
			Return(&reviewModel.Review{ID: "rev-1"}, nil)
		assignmentRepo.On("Complete", ctx, "paper-1", "reviewer@example.com", "rev-1", mock.Anything).
			Return(nil)
		userRepo.On("GetByID", ctx, "a1").Return(author, nil)
		notifier.On("Notify", ctx, "author@example.com", notification.KindReviewSubmitted, mock.Anything).
			Return(errors.New("smtp down"))

		review, err := svc.Submit(ctx, "paper-1", validReq())

		require.NoError(t, err)
		assert.Equal(t, "rev-1", review.ID)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc := New(new(mockReviewRepo), new(mockAssignmentRepo), new(mockPaperRepo),
			new(mockUserRepo), new(mockNotifier), zap.NewNop().Sugar())

		empty := validReq()
		empty.Content = ""
		_, err := svc.Submit(ctx, "paper-1", empty)
		assert.ErrorIs(t, err, reviewModel.ErrMissingContent)

		badRec := validReq()
		badRec.Recommendation = "burn it"
		_, err = svc.Submit(ctx, "paper-1", badRec)
		assert.ErrorIs(t, err, reviewModel.ErrInvalidRecommendation)

		badConf := validReq()
		badConf.ConfidenceLevel = "absolute"
		_, err = svc.Submit(ctx, "paper-1", badConf)
		assert.ErrorIs(t, err, reviewModel.ErrInvalidConfidence)
	})
}
