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
	proposalModel "github.com/openscholar/review-service/internal/proposal/model"
	threadModel "github.com/openscholar/review-service/internal/thread/model"
	userModel "github.com/openscholar/review-service/internal/user/model"
)

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

type mockProposalRepo struct {
	mock.Mock
}

func (m *mockProposalRepo) Create(ctx context.Context, p *proposalModel.Proposal) (*proposalModel.Proposal, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*proposalModel.Proposal), args.Error(1)
}

func (m *mockProposalRepo) GetByID(ctx context.Context, proposalID string) (*proposalModel.Proposal, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*proposalModel.Proposal), args.Error(1)
}

func (m *mockProposalRepo) MarkSubmitted(ctx context.Context, proposalID string, submittedAt time.Time) error {
	args := m.Called(ctx, proposalID, submittedAt)
	return args.Error(0)
}

func (m *mockProposalRepo) SetDecision(ctx context.Context, proposalID, status, adminNotes string, reviewedAt time.Time) error {
	args := m.Called(ctx, proposalID, status, adminNotes, reviewedAt)
	return args.Error(0)
}

func (m *mockProposalRepo) AdvanceToUnderReview(ctx context.Context, proposalID string) error {
	args := m.Called(ctx, proposalID)
	return args.Error(0)
}

func (m *mockProposalRepo) ListByAuthor(ctx context.Context, authorID string) ([]proposalModel.Proposal, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]proposalModel.Proposal), args.Error(1)
}

func (m *mockProposalRepo) ListByStatus(ctx context.Context, status string) ([]proposalModel.Proposal, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]proposalModel.Proposal), args.Error(1)
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

type mockThreadRepo struct {
	mock.Mock
}

func (m *mockThreadRepo) Ensure(ctx context.Context, paperID, reviewerID, authorID, subject string) (*threadModel.ReviewThread, error) {
	args := m.Called(ctx, paperID, reviewerID, authorID, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*threadModel.ReviewThread), args.Error(1)
}

func (m *mockThreadRepo) GetByID(ctx context.Context, threadID string) (*threadModel.ReviewThread, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*threadModel.ReviewThread), args.Error(1)
}

func (m *mockThreadRepo) ListForParty(ctx context.Context, partyID, role string) ([]threadModel.ReviewThread, error) {
	args := m.Called(ctx, partyID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]threadModel.ReviewThread), args.Error(1)
}

func (m *mockThreadRepo) CreateMessage(ctx context.Context, msg *threadModel.Message) (*threadModel.Message, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*threadModel.Message), args.Error(1)
}

func (m *mockThreadRepo) ListMessages(ctx context.Context, threadID string) ([]threadModel.Message, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]threadModel.Message), args.Error(1)
}

func (m *mockThreadRepo) CountUnread(ctx context.Context, threadID, readerRole string) (int64, error) {
	args := m.Called(ctx, threadID, readerRole)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockThreadRepo) MarkRead(ctx context.Context, threadID, readerRole string) error {
	args := m.Called(ctx, threadID, readerRole)
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

func strPtr(v string) *string {
	return &v
}

func TestService_Assign(t *testing.T) {
	ctx := context.Background()

	reviewer := &userModel.User{
		ID:    "r1",
		Email: "reviewer@example.com",
		Name:  "Riley",
		Role:  userModel.RoleReviewer,
	}
	proposal := &proposalModel.Proposal{
		ID:       "prop-1",
		AuthorID: "a1",
		Title:    "Quantum Errors",
		Status:   proposalModel.StatusSubmitted,
	}
	paper := &paperModel.Paper{
		ID:       "paper-1",
		Title:    "Quantum Errors",
		AuthorID: "a1",
		Status:   paperModel.StatusUnderReview,
	}

	newService := func() (Service, *mockAssignmentRepo, *mockProposalRepo, *mockPaperRepo, *mockThreadRepo, *mockUserRepo, *mockNotifier) {
		assignmentRepo := new(mockAssignmentRepo)
		proposalRepo := new(mockProposalRepo)
		paperRepo := new(mockPaperRepo)
		threadRepo := new(mockThreadRepo)
		userRepo := new(mockUserRepo)
		notifier := new(mockNotifier)
		svc := New(assignmentRepo, proposalRepo, paperRepo, threadRepo, userRepo, notifier, zap.NewNop().Sugar())
		return svc, assignmentRepo, proposalRepo, paperRepo, threadRepo, userRepo, notifier
	}

	t.Run("success wires paper, assignment and thread", func(t *testing.T) {
		svc, assignmentRepo, proposalRepo, paperRepo, threadRepo, userRepo, notifier := newService()

		userRepo.On("GetByID", ctx, "r1").Return(reviewer, nil)
		proposalRepo.On("GetByID", ctx, "prop-1").Return(proposal, nil)
		paperRepo.On("EnsureForProposal", ctx, "prop-1", "Quantum Errors", "a1").Return(paper, nil)
		assignmentRepo.On("Upsert", ctx, mock.AnythingOfType("*model.ReviewerAssignment")).
			Return(&assignmentModel.ReviewerAssignment{
				ID:            "as-1",
				PaperID:       "paper-1",
				ReviewerID:    strPtr("r1"),
				ReviewerEmail: "reviewer@example.com",
				Status:        assignmentModel.StatusAssigned,
			}, nil)
		threadRepo.On("Ensure", ctx, "paper-1", "r1", "a1", "Review: Quantum Errors").
			Return(&threadModel.ReviewThread{ID: "th-1"}, nil)
		proposalRepo.On("AdvanceToUnderReview", ctx, "prop-1").Return(nil)
		notifier.On("Notify", ctx, "reviewer@example.com", notification.KindReviewerAssigned, mock.Anything).
			Return(nil)

		resp, err := svc.Assign(ctx, &assignmentModel.AssignReviewerRequest{
			ProposalID: "prop-1",
			ReviewerID: "r1",
		})

		require.NoError(t, err)
		assert.Equal(t, "paper-1", resp.PaperID)
		assert.Equal(t, "th-1", resp.ThreadID)
		assert.Empty(t, resp.CommunicationWarning)
		assignmentRepo.AssertExpectations(t)
		threadRepo.AssertExpectations(t)
	})

	t.Run("thread failure is soft", func(t *testing.T) {
		svc, assignmentRepo, proposalRepo, paperRepo, threadRepo, userRepo, notifier := newService()

		userRepo.On("GetByID", ctx, "r1").Return(reviewer, nil)
		proposalRepo.On("GetByID", ctx, "prop-1").Return(proposal, nil)
		paperRepo.On("EnsureForProposal", ctx, "prop-1", "Quantum Errors", "a1").Return(paper, nil)
		assignmentRepo.On("Upsert", ctx, mock.AnythingOfType("*model.ReviewerAssignment")).
			Return(&assignmentModel.ReviewerAssignment{
				ID:      "as-1",
				PaperID: "paper-1",
				Status:  assignmentModel.StatusAssigned,
			}, nil)
		threadRepo.On("Ensure", ctx, "paper-1", "r1", "a1", "Review: Quantum Errors").
			Return(nil, errors.New("db timeout"))
		proposalRepo.On("AdvanceToUnderReview", ctx, "prop-1").Return(nil)
		notifier.On("Notify", ctx, "reviewer@example.com", notification.KindReviewerAssigned, mock.Anything).
			Return(nil)

		resp, err := svc.Assign(ctx, &assignmentModel.AssignReviewerRequest{
			ProposalID: "prop-1",
			ReviewerID: "r1",
		})

		require.NoError(t, err)
		assert.Equal(t, "review thread could not be opened", resp.CommunicationWarning)
		assert.Empty(t, resp.ThreadID)
	})

	t.Run("notification failure is soft", func(t *testing.T) {
		svc, assignmentRepo, proposalRepo, paperRepo, threadRepo, userRepo, notifier := newService()

		userRepo.On("GetByID", ctx, "r1").Return(reviewer, nil)
		proposalRepo.On("GetByID", ctx, "prop-1").Return(proposal, nil)
		paperRepo.On("EnsureForProposal", ctx, "prop-1", "Quantum Errors", "a1").Return(paper, nil)
		assignmentRepo.On("Upsert", ctx, mock.AnythingOfType("*model.ReviewerAssignment")).
			Return(&assignmentModel.ReviewerAssignment{ID: "as-1", PaperID: "paper-1"}, nil)
		threadRepo.On("Ensure", ctx, "paper-1", "r1", "a1", "Review: Quantum Errors").
			Return(&threadModel.ReviewThread{ID: "th-1"}, nil)
		proposalRepo.On("AdvanceToUnderReview", ctx, "prop-1").Return(nil)
		notifier.On("Notify", ctx, "reviewer@example.com", notification.KindReviewerAssigned, mock.Anything).
			Return(errors.New("smtp down"))

		resp, err := svc.Assign(ctx, &assignmentModel.AssignReviewerRequest{
			ProposalID: "prop-1",
			ReviewerID: "r1",
		})

		require.NoError(t, err)
		assert.Equal(t, "th-1", resp.ThreadID)
	})

	t.Run("missing reviewer id", func(t *testing.T) {
		svc, _, _, _, _, _, _ := newService()

		resp, err := svc.Assign(ctx, &assignmentModel.AssignReviewerRequest{ProposalID: "prop-1"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, assignmentModel.ErrMissingReviewer)
	})

	t.Run("unknown reviewer", func(t *testing.T) {
		svc, _, _, _, _, userRepo, _ := newService()

		userRepo.On("GetByID", ctx, "ghost").Return(nil, userModel.ErrUserNotFound)

		resp, err := svc.Assign(ctx, &assignmentModel.AssignReviewerRequest{
			ProposalID: "prop-1",
			ReviewerID: "ghost",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, userModel.ErrUserNotFound)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		svc, _, proposalRepo, _, _, userRepo, _ := newService()

		userRepo.On("GetByID", ctx, "r1").Return(reviewer, nil)
		proposalRepo.On("GetByID", ctx, "missing").Return(nil, proposalModel.ErrProposalNotFound)

		resp, err := svc.Assign(ctx, &assignmentModel.AssignReviewerRequest{
			ProposalID: "missing",
			ReviewerID: "r1",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, proposalModel.ErrProposalNotFound)
	})
}

func TestService_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("accept records response", func(t *testing.T) {
		assignmentRepo := new(mockAssignmentRepo)
		svc := New(assignmentRepo, new(mockProposalRepo), new(mockPaperRepo),
			new(mockThreadRepo), new(mockUserRepo), new(mockNotifier), zap.NewNop().Sugar())

		stored := &assignmentModel.ReviewerAssignment{
			ID:         "as-1",
			ReviewerID: strPtr("r1"),
			Status:     assignmentModel.StatusAssigned,
		}
		accepted := &assignmentModel.ReviewerAssignment{
			ID:         "as-1",
			ReviewerID: strPtr("r1"),
			Status:     assignmentModel.StatusAccepted,
		}
		assignmentRepo.On("GetByID", ctx, "as-1").Return(stored, nil).Once()
		assignmentRepo.On("SetResponse", ctx, "as-1", assignmentModel.StatusAccepted, mock.Anything).Return(nil)
		assignmentRepo.On("GetByID", ctx, "as-1").Return(accepted, nil).Once()

		result, err := svc.Respond(ctx, "as-1", &assignmentModel.RespondToInvitationRequest{
			ActorID:  "r1",
			Response: assignmentModel.StatusAccepted,
		})

		require.NoError(t, err)
		assert.Equal(t, assignmentModel.StatusAccepted, result.Status)
		assignmentRepo.AssertExpectations(t)
	})

	t.Run("only the invited reviewer may respond", func(t *testing.T) {
		assignmentRepo := new(mockAssignmentRepo)
		svc := New(assignmentRepo, new(mockProposalRepo), new(mockPaperRepo),
			new(mockThreadRepo), new(mockUserRepo), new(mockNotifier), zap.NewNop().Sugar())

		assignmentRepo.On("GetByID", ctx, "as-1").Return(&assignmentModel.ReviewerAssignment{
			ID:         "as-1",
			ReviewerID: strPtr("r1"),
		}, nil)

		result, err := svc.Respond(ctx, "as-1", &assignmentModel.RespondToInvitationRequest{
			ActorID:  "intruder",
			Response: assignmentModel.StatusAccepted,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, assignmentModel.ErrNotAssignmentOwner)
	})

	t.Run("invalid response value", func(t *testing.T) {
		assignmentRepo := new(mockAssignmentRepo)
		svc := New(assignmentRepo, new(mockProposalRepo), new(mockPaperRepo),
			new(mockThreadRepo), new(mockUserRepo), new(mockNotifier), zap.NewNop().Sugar())

		assignmentRepo.On("GetByID", ctx, "as-1").Return(&assignmentModel.ReviewerAssignment{
			ID:         "as-1",
			ReviewerID: strPtr("r1"),
		}, nil)

		result, err := svc.Respond(ctx, "as-1", &assignmentModel.RespondToInvitationRequest{
			ActorID:  "r1",
			Response: "maybe",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, assignmentModel.ErrInvalidResponse)
	})
}
