package services_test

import (
	"context"
	"errors"
	"testing"

	"deliveryapi/internal/core/application/services"
	"deliveryapi/internal/core/domain/model/customer"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func restoredCustomer(t *testing.T, id int64, active bool) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(mustID(t, id), "Maria Silva", "maria@example.com", active)
	require.NoError(t, err)
	return c
}

func TestCustomerService_Create_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("ExistsByEmail", ctx, "maria@example.com").Return(false, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewCustomerService(newFactoryFor(uow))
	c, err := svc.Create(ctx, "Maria Silva", "maria@example.com")

	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", c.Email())
	assert.True(t, c.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCustomerService_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("ExistsByEmail", ctx, "maria@example.com").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewCustomerService(newFactoryFor(uow))
	_, err := svc.Create(ctx, "Maria Silva", "maria@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "email already registered")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCustomerService_Create_InvalidInput(t *testing.T) {
	ctx := context.Background()

	factory := new(MockUnitOfWorkFactory)
	svc := services.NewCustomerService(factory)

	_, err := svc.Create(ctx, "", "broken")

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCustomerService_GetActiveByEmail_InvalidEmail(t *testing.T) {
	ctx := context.Background()

	factory := new(MockUnitOfWorkFactory)
	svc := services.NewCustomerService(factory)

	_, err := svc.GetActiveByEmail(ctx, "not-an-email")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCustomerService_GetActiveByEmail_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetActiveByEmail", ctx, "maria@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "maria@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewCustomerService(newFactoryFor(uow))
	_, err := svc.GetActiveByEmail(ctx, "maria@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCustomerService_Update_RenameOnly(t *testing.T) {
	ctx := context.Background()
	existing := restoredCustomer(t, 42, true)

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustID(t, 42)).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	name := "Maria Souza"
	svc := services.NewCustomerService(newFactoryFor(uow))
	c, err := svc.Update(ctx, mustID(t, 42), services.CustomerPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", c.Name())
	assert.Equal(t, "maria@example.com", c.Email())
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestCustomerService_Update_EmailChangeChecksUniqueness(t *testing.T) {
	ctx := context.Background()
	existing := restoredCustomer(t, 42, true)

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustID(t, 42)).Return(existing, nil).Once(),
		repo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	email := "taken@example.com"
	svc := services.NewCustomerService(newFactoryFor(uow))
	_, err := svc.Update(ctx, mustID(t, 42), services.CustomerPatch{Email: &email})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Equal(t, "maria@example.com", existing.Email())
}

func TestCustomerService_Update_SameEmailSkipsUniquenessCheck(t *testing.T) {
	ctx := context.Background()
	existing := restoredCustomer(t, 42, true)

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustID(t, 42)).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	email := "maria@example.com"
	svc := services.NewCustomerService(newFactoryFor(uow))
	_, err := svc.Update(ctx, mustID(t, 42), services.CustomerPatch{Email: &email})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestCustomerService_Deactivate_AlreadyInactive(t *testing.T) {
	ctx := context.Background()
	existing := restoredCustomer(t, 42, false)

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustID(t, 42)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewCustomerService(newFactoryFor(uow))
	_, err := svc.Deactivate(ctx, mustID(t, 42))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCustomerService_Delete_WithOrders(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("HasOrders", ctx, mustID(t, 42)).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewCustomerService(newFactoryFor(uow))
	err := svc.Delete(ctx, mustID(t, 42))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "cannot be deleted")
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCustomerService_Delete_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("HasOrders", ctx, mustID(t, 42)).Return(false, nil).Once(),
		repo.On("Delete", ctx, mustID(t, 42)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewCustomerService(newFactoryFor(uow))
	require.NoError(t, svc.Delete(ctx, mustID(t, 42)))
	repo.AssertExpectations(t)
}

func TestCustomerService_BeginError(t *testing.T) {
	ctx := context.Background()

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	svc := services.NewCustomerService(newFactoryFor(uow))
	_, err := svc.Get(ctx, mustID(t, 42))

	require.Error(t, err)
}

func TestCustomerService_ListActive(t *testing.T) {
	ctx := context.Background()
	active := []*customer.Customer{restoredCustomer(t, 7, true)}

	repo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetAllActive", ctx).Return(active, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	svc := services.NewCustomerService(newFactoryFor(uow))
	list, err := svc.ListActive(ctx)

	require.NoError(t, err)
	assert.Equal(t, active, list)
	uow.AssertExpectations(t)
}
