package customer_test

import (
	"strings"
	"testing"

	"deliveryapi/internal/core/domain/model/customer"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create active customer", func(t *testing.T) {
		c, err := customer.NewCustomer("Maria Silva", "maria@example.com")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Maria Silva", c.Name())
		assert.Equal(t, "maria@example.com", c.Email())
		assert.True(t, c.IsActive())
		assert.Error(t, c.ID().Validate(), "identifier is assigned by the store")
	})

	t.Run("should reject blank name", func(t *testing.T) {
		for _, name := range []string{"", "   ", "\t\n"} {
			_, err := customer.NewCustomer(name, "maria@example.com")

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should reject name shorter than 3 characters", func(t *testing.T) {
		_, err := customer.NewCustomer("Jo", "jo@example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject name longer than 100 characters", func(t *testing.T) {
		_, err := customer.NewCustomer(strings.Repeat("a", 101), "maria@example.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept name at the boundaries", func(t *testing.T) {
		_, err := customer.NewCustomer("Ana", "ana@example.com")
		require.NoError(t, err)

		_, err = customer.NewCustomer(strings.Repeat("a", 100), "long@example.com")
		require.NoError(t, err)
	})

	t.Run("should collect name and email errors together", func(t *testing.T) {
		_, err := customer.NewCustomer("", "not-an-email")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValidateEmail(t *testing.T) {
	t.Run("should accept valid addresses", func(t *testing.T) {
		for _, email := range []string{
			"maria@example.com",
			"user+tag@domain.org",
			"first.last@sub.domain.com",
			"a_b-c@d",
		} {
			t.Run(email, func(t *testing.T) {
				assert.NoError(t, customer.ValidateEmail(email))
			})
		}
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		for _, email := range []string{
			"no-at-sign",
			"@missing-local.com",
			"trailing@",
			"spaces in@local.com",
		} {
			t.Run(email, func(t *testing.T) {
				err := customer.ValidateEmail(email)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should reject blank address as required", func(t *testing.T) {
		err := customer.ValidateEmail("  ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject address longer than 100 characters", func(t *testing.T) {
		err := customer.ValidateEmail(strings.Repeat("a", 95) + "@ex.com")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreCustomer(t *testing.T) {
	t.Run("should restore customer with persisted state", func(t *testing.T) {
		c, err := customer.RestoreCustomer(mustID(t, 42), "Maria Silva", "maria@example.com", false)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, mustID(t, 42), c.ID())
		assert.False(t, c.IsActive())
	})

	t.Run("should reject invalid identifier", func(t *testing.T) {
		_, err := customer.RestoreCustomer(kernel.ID{}, "Maria Silva", "maria@example.com", true)
		require.Error(t, err)
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("should fail for nil customer", func(t *testing.T) {
		var c *customer.Customer
		assert.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})

	t.Run("should fail for zero-value customer", func(t *testing.T) {
		var c customer.Customer
		assert.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	})
}

func TestCustomer_AssignID(t *testing.T) {
	t.Run("should assign identifier once", func(t *testing.T) {
		c, err := customer.NewCustomer("Maria Silva", "maria@example.com")
		require.NoError(t, err)

		require.NoError(t, c.AssignID(mustID(t, 42)))
		assert.Equal(t, mustID(t, 42), c.ID())

		err = c.AssignID(mustID(t, 43))
		require.Error(t, err)
		assert.Equal(t, mustID(t, 42), c.ID())
	})
}

func TestCustomer_Updates(t *testing.T) {
	newCustomer := func(t *testing.T) *customer.Customer {
		t.Helper()
		c, err := customer.NewCustomer("Maria Silva", "maria@example.com")
		require.NoError(t, err)
		return c
	}

	t.Run("should rename with validation", func(t *testing.T) {
		c := newCustomer(t)

		require.NoError(t, c.Rename("Maria Souza"))
		assert.Equal(t, "Maria Souza", c.Name())

		require.Error(t, c.Rename(""))
		assert.Equal(t, "Maria Souza", c.Name())
	})

	t.Run("should change email with validation", func(t *testing.T) {
		c := newCustomer(t)

		require.NoError(t, c.ChangeEmail("maria.souza@example.com"))
		assert.Equal(t, "maria.souza@example.com", c.Email())

		require.Error(t, c.ChangeEmail("broken"))
		assert.Equal(t, "maria.souza@example.com", c.Email())
	})
}

func TestCustomer_ActivationCycle(t *testing.T) {
	t.Run("should reject activating an active customer", func(t *testing.T) {
		c, err := customer.NewCustomer("Maria Silva", "maria@example.com")
		require.NoError(t, err)

		err = c.Activate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Contains(t, err.Error(), "customer is already active")
		assert.True(t, c.IsActive())
	})

	t.Run("should deactivate then reject a second deactivation", func(t *testing.T) {
		c, err := customer.NewCustomer("Maria Silva", "maria@example.com")
		require.NoError(t, err)

		require.NoError(t, c.Deactivate())
		assert.False(t, c.IsActive())

		err = c.Deactivate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer is already inactive")
	})

	t.Run("should reactivate an inactive customer", func(t *testing.T) {
		c, err := customer.RestoreCustomer(mustID(t, 42), "Maria Silva", "maria@example.com", false)
		require.NoError(t, err)

		require.NoError(t, c.Activate())
		assert.True(t, c.IsActive())
	})
}
