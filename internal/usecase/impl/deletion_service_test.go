package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/errors"
)

type stubDeletionRepo struct {
	items       []entity.DeletionRequest
	decideCalls int
	lastAction  entity.DeletionAction
	lastReason  string
}

func (r *stubDeletionRepo) List(_ context.Context) ([]entity.DeletionRequest, error) {
	return r.items, nil
}

func (r *stubDeletionRepo) Submit(_ context.Context, _ string, _ entity.AccountType, _ string) (*entity.DeletionRequest, error) {
	return nil, nil
}

func (r *stubDeletionRepo) Decide(_ context.Context, id string, action entity.DeletionAction, reason string) (*entity.DeletionRequest, error) {
	r.decideCalls++
	r.lastAction = action
	r.lastReason = reason

	status := entity.DeletionApproved
	if action == entity.DeletionActionReject {
		status = entity.DeletionRejected
	}

	return &entity.DeletionRequest{ID: id, Status: status, DecisionReason: reason}, nil
}

func TestDeletionService_RejectRequiresDecisionReason(t *testing.T) {
	t.Parallel()

	repo := &stubDeletionRepo{items: []entity.DeletionRequest{{ID: "d1", Status: entity.DeletionPending}}}
	service := NewDeletionService(repo, discardLogger())

	_, err := service.Decide(context.Background(), "d1", entity.DeletionActionReject, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReasonRequired))
	assert.Zero(t, repo.decideCalls)
}

func TestDeletionService_ApproveNeedsNoReason(t *testing.T) {
	t.Parallel()

	repo := &stubDeletionRepo{items: []entity.DeletionRequest{{ID: "d1", Status: entity.DeletionPending}}}
	service := NewDeletionService(repo, discardLogger())

	request, err := service.Decide(context.Background(), "d1", entity.DeletionActionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, entity.DeletionApproved, request.Status)
	assert.Equal(t, 1, repo.decideCalls)
}

func TestDeletionService_DecidedRequestCannotBeDecidedAgain(t *testing.T) {
	t.Parallel()

	repo := &stubDeletionRepo{items: []entity.DeletionRequest{{ID: "d1", Status: entity.DeletionPending}}}
	service := NewDeletionService(repo, discardLogger())

	_, err := service.List(context.Background())
	require.NoError(t, err)

	_, err = service.Decide(context.Background(), "d1", entity.DeletionActionApprove, "")
	require.NoError(t, err)

	_, err = service.Decide(context.Background(), "d1", entity.DeletionActionReject, "late objection")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	assert.Equal(t, 1, repo.decideCalls)
}
