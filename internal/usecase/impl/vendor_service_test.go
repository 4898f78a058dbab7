package impl

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"console/internal/domain/entity"
	domainerrors "console/internal/domain/errors"
	"console/internal/domain/repository"
	"console/internal/errors"
	"console/internal/usecase"
)

type stubVendorRepo struct {
	mu          sync.Mutex
	page        *repository.Page[entity.Vendor]
	verifyCalls int
	lastStatus  entity.VerificationStatus
	lastReason  string
	verifyErr   error
	result      *entity.Vendor

	started chan struct{} // closed when Verify begins, when non-nil
	block   chan struct{} // Verify waits on this, when non-nil
}

func (r *stubVendorRepo) List(_ context.Context, _ repository.ListQuery) (*repository.Page[entity.Vendor], error) {
	return r.page, nil
}

func (r *stubVendorRepo) FindByID(_ context.Context, _ string) (*entity.Vendor, error) {
	return r.result, nil
}

func (r *stubVendorRepo) Verify(_ context.Context, _ string, status entity.VerificationStatus, reason string) (*entity.Vendor, error) {
	r.mu.Lock()
	r.verifyCalls++
	r.lastStatus = status
	r.lastReason = reason
	started := r.started
	block := r.block
	r.mu.Unlock()

	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}

	if r.verifyErr != nil {
		return nil, r.verifyErr
	}

	return r.result, nil
}

func (r *stubVendorRepo) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.verifyCalls
}

type stubDeletionSubmitRepo struct {
	submitCalls int
	lastReason  string
}

func (r *stubDeletionSubmitRepo) List(_ context.Context) ([]entity.DeletionRequest, error) {
	return nil, nil
}

func (r *stubDeletionSubmitRepo) Submit(_ context.Context, accountID string, accountType entity.AccountType, reason string) (*entity.DeletionRequest, error) {
	r.submitCalls++
	r.lastReason = reason

	return &entity.DeletionRequest{ID: "d1", AccountID: accountID, AccountType: accountType, Reason: reason}, nil
}

func (r *stubDeletionSubmitRepo) Decide(_ context.Context, _ string, _ entity.DeletionAction, _ string) (*entity.DeletionRequest, error) {
	return nil, nil
}

func pendingVendorPage() *repository.Page[entity.Vendor] {
	return &repository.Page[entity.Vendor]{
		Items: []entity.Vendor{
			{ID: "v1", BusinessName: "Blue Bakery", VerificationStatus: entity.VerificationPending},
		},
		Total: 1, Page: 1, Limit: 10, TotalPages: 1,
	}
}

func createTestVendorService(repo *stubVendorRepo, deletions repository.DeletionRepository) usecase.VendorUsecase {
	if deletions == nil {
		deletions = &stubDeletionSubmitRepo{}
	}

	return NewVendorService(repo, deletions, testConfig(), discardLogger())
}

func TestVendorService_RejectWithEmptyReasonSendsNothing(t *testing.T) {
	t.Parallel()

	repo := &stubVendorRepo{page: pendingVendorPage()}
	service := createTestVendorService(repo, nil)

	_, err := service.Reject(context.Background(), "v1", "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReasonRequired))
	assert.Zero(t, repo.calls())
}

func TestVendorService_RejectSendsReasonExactlyOnce(t *testing.T) {
	t.Parallel()

	repo := &stubVendorRepo{
		page:   pendingVendorPage(),
		result: &entity.Vendor{ID: "v1", VerificationStatus: entity.VerificationRejected},
	}
	service := createTestVendorService(repo, nil)

	vendor, err := service.Reject(context.Background(), "v1", "documents unreadable")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls())
	assert.Equal(t, "documents unreadable", repo.lastReason)
	assert.Equal(t, entity.VerificationRejected, vendor.VerificationStatus)
}

func TestVendorService_DuplicateApproveIssuesOneRequest(t *testing.T) {
	t.Parallel()

	repo := &stubVendorRepo{
		page:    pendingVendorPage(),
		result:  &entity.Vendor{ID: "v1", VerificationStatus: entity.VerificationApproved},
		started: make(chan struct{}),
		block:   make(chan struct{}),
	}
	service := createTestVendorService(repo, nil)

	_, err := service.List(context.Background(), repository.ListQuery{Page: 1})
	require.NoError(t, err)

	firstDone := make(chan error, 1)
	go func() {
		_, err := service.Approve(context.Background(), "v1")
		firstDone <- err
	}()

	<-repo.started

	_, err = service.Approve(context.Background(), "v1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrActionInFlight))

	close(repo.block)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, repo.calls())
}

func TestVendorService_FailedApproveLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	repo := &stubVendorRepo{
		page:      pendingVendorPage(),
		verifyErr: domainerrors.NewUpstreamError(500, "backend down"),
	}
	service := createTestVendorService(repo, nil)

	before, err := service.List(context.Background(), repository.ListQuery{Page: 1})
	require.NoError(t, err)

	_, err = service.Approve(context.Background(), "v1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")

	after, err := service.List(context.Background(), repository.ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, before.Items, after.Items)
	assert.Equal(t, entity.VerificationPending, after.Items[0].VerificationStatus)
}

func TestVendorService_DecidedVendorCannotBeDecidedAgain(t *testing.T) {
	t.Parallel()

	repo := &stubVendorRepo{
		page:   pendingVendorPage(),
		result: &entity.Vendor{ID: "v1", VerificationStatus: entity.VerificationApproved},
	}
	service := createTestVendorService(repo, nil)

	_, err := service.List(context.Background(), repository.ListQuery{Page: 1})
	require.NoError(t, err)

	_, err = service.Approve(context.Background(), "v1")
	require.NoError(t, err)

	// The displayed row now carries the decision; a second decision is
	// rejected before any request leaves.
	_, err = service.Approve(context.Background(), "v1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	assert.Equal(t, 1, repo.calls())
}

func TestVendorService_RequestDeletionRequiresReason(t *testing.T) {
	t.Parallel()

	repo := &stubVendorRepo{page: pendingVendorPage()}
	deletions := &stubDeletionSubmitRepo{}
	service := createTestVendorService(repo, deletions)

	_, err := service.RequestDeletion(context.Background(), "v1", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReasonRequired))
	assert.Zero(t, deletions.submitCalls)

	request, err := service.RequestDeletion(context.Background(), "v1", "fraudulent listings")
	require.NoError(t, err)
	assert.Equal(t, 1, deletions.submitCalls)
	assert.Equal(t, "fraudulent listings", request.Reason)
	assert.Equal(t, entity.AccountTypeVendor, request.AccountType)
}
