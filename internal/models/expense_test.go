package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validExpense() *Expense {
	return &Expense{
		UserID:   uuid.New(),
		Category: CategoryFood,
		Amount:   decimal.NewFromInt(10),
		Date:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestExpenseValidate(t *testing.T) {
	t.Run("valid expense", func(t *testing.T) {
		assert.NoError(t, validExpense().Validate())
	})

	t.Run("missing user", func(t *testing.T) {
		e := validExpense()
		e.UserID = uuid.Nil
		assert.Error(t, e.Validate())
	})

	t.Run("unknown category", func(t *testing.T) {
		e := validExpense()
		e.Category = "Groceries"
		assert.Equal(t, ErrInvalidCategory, e.Validate())
	})

	t.Run("zero amount", func(t *testing.T) {
		e := validExpense()
		e.Amount = decimal.Zero
		assert.Equal(t, ErrInvalidAmount, e.Validate())
	})

	t.Run("negative amount", func(t *testing.T) {
		e := validExpense()
		e.Amount = decimal.NewFromInt(-5)
		assert.Equal(t, ErrInvalidAmount, e.Validate())
	})

	t.Run("missing date", func(t *testing.T) {
		e := validExpense()
		e.Date = time.Time{}
		assert.Error(t, e.Validate())
	})
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2024, time.March, 15, 18, 42, 7, 123, time.UTC)
	out := TruncateToDay(in)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), out)
	assert.Equal(t, time.UTC, out.Location())
}

func TestTruncateToDay_Idempotent(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, day, TruncateToDay(day))
}
