package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/repository"
	"console/internal/errors"
)

type stubUserRepo struct {
	page        *repository.Page[entity.User]
	updateCalls int
	lastStatus  entity.UserStatus
	updateErr   error
}

func (r *stubUserRepo) List(_ context.Context, _ repository.ListQuery) (*repository.Page[entity.User], error) {
	return r.page, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	return &entity.User{ID: id, Status: entity.UserActive}, nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id string, status entity.UserStatus) (*entity.User, error) {
	r.updateCalls++
	r.lastStatus = status
	if r.updateErr != nil {
		return nil, r.updateErr
	}

	return &entity.User{ID: id, Status: status}, nil
}

func activeUserPage() *repository.Page[entity.User] {
	return &repository.Page[entity.User]{
		Items: []entity.User{{ID: "u1", Email: "alice@example.com", Status: entity.UserActive}},
		Total: 1, Page: 1, Limit: 10, TotalPages: 1,
	}
}

func TestUserService_SuspendPatchesDisplayedRow(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{page: activeUserPage()}
	service := NewUserService(repo, &stubDeletionSubmitRepo{}, testConfig(), discardLogger())

	_, err := service.List(context.Background(), repository.ListQuery{Page: 1})
	require.NoError(t, err)

	user, err := service.Suspend(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.UserSuspended, user.Status)
	assert.Equal(t, entity.UserSuspended, repo.lastStatus)

	// Suspension works from any state, so reactivation goes straight out.
	user, err = service.Activate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.UserActive, user.Status)
	assert.Equal(t, 2, repo.updateCalls)
}

func TestUserService_FailedSuspendLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{
		page:      activeUserPage(),
		updateErr: domainerrors.NewUpstreamError(503, "maintenance window"),
	}
	service := NewUserService(repo, &stubDeletionSubmitRepo{}, testConfig(), discardLogger())

	before, err := service.List(context.Background(), repository.ListQuery{Page: 1})
	require.NoError(t, err)

	_, err = service.Suspend(context.Background(), "u1")
	require.Error(t, err)

	after, err := service.List(context.Background(), repository.ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, before.Items, after.Items)
}

func TestUserService_RequestDeletionRequiresReason(t *testing.T) {
	t.Parallel()

	deletions := &stubDeletionSubmitRepo{}
	service := NewUserService(&stubUserRepo{page: activeUserPage()}, deletions, testConfig(), discardLogger())

	_, err := service.RequestDeletion(context.Background(), "u1", " ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReasonRequired))
	assert.Zero(t, deletions.submitCalls)

	request, err := service.RequestDeletion(context.Background(), "u1", "requested by owner")
	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeUser, request.AccountType)
	assert.Equal(t, 1, deletions.submitCalls)
}
