package services

import (
	"context"

	"deliveryapi/internal/core/domain/model/customer"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/ports"
	"deliveryapi/internal/pkg/errs"
)

// CustomerPatch carries the optional fields of a customer update.
// Nil fields are left unchanged.
type CustomerPatch struct {
	Name  *string
	Email *string
}

// CustomerService implements the customer use cases: registration with a
// unique email, updates, soft activation state, and guarded deletion.
type CustomerService struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCustomerService creates a CustomerService backed by the given
// UnitOfWork factory.
func NewCustomerService(uowFactory ports.UnitOfWorkFactory) CustomerService {
	return CustomerService{uowFactory: uowFactory}
}

// Create registers a new active customer. The email must not be registered
// to any customer, active or inactive.
func (s *CustomerService) Create(ctx context.Context, name, email string) (*customer.Customer, error) {
	c, err := customer.NewCustomer(name, email)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.CustomerRepository()
	taken, err := repo.ExistsByEmail(ctx, c.Email())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewBusinessRuleViolatedError("email already registered")
	}

	if err = repo.Add(ctx, c); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Get retrieves a customer by identifier.
func (s *CustomerService) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.CustomerRepository().Get(ctx, id)
}

// GetActiveByEmail retrieves the active customer registered under the given
// email. Inactive customers are reported as not found.
func (s *CustomerService) GetActiveByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	if err := customer.ValidateEmail(email); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.CustomerRepository().GetActiveByEmail(ctx, email)
}

// List retrieves all customers ordered by name.
func (s *CustomerService) List(ctx context.Context) ([]*customer.Customer, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.CustomerRepository().GetAll(ctx)
}

// ListActive retrieves only the active customers ordered by name.
func (s *CustomerService) ListActive(ctx context.Context) ([]*customer.Customer, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.CustomerRepository().GetAllActive(ctx)
}

// CountActive returns the number of active customers.
func (s *CustomerService) CountActive(ctx context.Context) (int64, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	return uow.CustomerRepository().CountActive(ctx)
}

// Update applies the non-nil fields of the patch to the customer. An email
// change is checked for uniqueness against all other customers.
func (s *CustomerService) Update(ctx context.Context, id kernel.ID, patch CustomerPatch) (*customer.Customer, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if err = c.Rename(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Email != nil && *patch.Email != c.Email() {
		taken, err := repo.ExistsByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewBusinessRuleViolatedError("email already registered")
		}
		if err = c.ChangeEmail(*patch.Email); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Activate marks the customer active. Activating an active customer is a
// business rule violation.
func (s *CustomerService) Activate(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	return s.changeActivation(ctx, id, (*customer.Customer).Activate)
}

// Deactivate marks the customer inactive, blocking new orders and email
// lookups. Deactivating an inactive customer is a business rule violation.
func (s *CustomerService) Deactivate(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	return s.changeActivation(ctx, id, (*customer.Customer).Deactivate)
}

func (s *CustomerService) changeActivation(
	ctx context.Context,
	id kernel.ID,
	change func(*customer.Customer) error,
) (*customer.Customer, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = change(c); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete removes a customer permanently. Customers that have placed orders
// cannot be deleted; deactivate them instead.
func (s *CustomerService) Delete(ctx context.Context, id kernel.ID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.CustomerRepository()
	hasOrders, err := repo.HasOrders(ctx, id)
	if err != nil {
		return err
	}
	if hasOrders {
		return errs.NewBusinessRuleViolatedError("customer with orders cannot be deleted")
	}

	if err = repo.Delete(ctx, id); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
