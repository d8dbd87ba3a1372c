package kernel_test

import (
	"testing"

	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from cents", func(t *testing.T) {
		m, err := kernel.NewMoney(2550)

		require.NoError(t, err)
		assert.Equal(t, int64(2550), m.Cents())
		assert.Equal(t, "2550", m.String())
	})

	t.Run("should reject negative cents", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromDollars(t *testing.T) {
	t.Run("should round to nearest cent", func(t *testing.T) {
		m, err := kernel.NewMoneyFromDollars(25.505)

		require.NoError(t, err)
		assert.Equal(t, int64(2551), m.Cents())
	})

	t.Run("should convert whole dollars exactly", func(t *testing.T) {
		m, err := kernel.NewMoneyFromDollars(30)

		require.NoError(t, err)
		assert.Equal(t, int64(3000), m.Cents())
	})
}

func TestMoneyAdd(t *testing.T) {
	t.Run("should sum carrier charge and handling fee", func(t *testing.T) {
		charge, _ := kernel.NewMoney(2550)
		fee, _ := kernel.NewMoney(3000)

		assert.Equal(t, "5550", charge.Add(fee).String())
	})

	t.Run("zero is the identity", func(t *testing.T) {
		m, _ := kernel.NewMoney(100)

		assert.Equal(t, m.Cents(), m.Add(kernel.Zero()).Cents())
	})
}
