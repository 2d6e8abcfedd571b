package validation

import (
	"errors"
	"testing"

	"smartspend/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValidator_ReturnsSingleton(t *testing.T) {
	first := GetValidator()
	second := GetValidator()

	assert.Same(t, first, second)
}

func TestValidate_AddExpenseRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		request dto.AddExpenseRequest
		wantErr bool
	}{
		{
			name: "valid request",
			request: dto.AddExpenseRequest{
				Category: "Food",
				Amount:   decimal.RequireFromString("12.50"),
				Date:     "2024-03-15",
			},
			wantErr: false,
		},
		{
			name: "unknown category",
			request: dto.AddExpenseRequest{
				Category: "Gambling",
				Amount:   decimal.RequireFromString("12.50"),
				Date:     "2024-03-15",
			},
			wantErr: true,
		},
		{
			name: "lowercase category rejected",
			request: dto.AddExpenseRequest{
				Category: "food",
				Amount:   decimal.RequireFromString("12.50"),
				Date:     "2024-03-15",
			},
			wantErr: true,
		},
		{
			name: "zero amount",
			request: dto.AddExpenseRequest{
				Category: "Food",
				Amount:   decimal.Zero,
				Date:     "2024-03-15",
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			request: dto.AddExpenseRequest{
				Category: "Food",
				Amount:   decimal.RequireFromString("-0.01"),
				Date:     "2024-03-15",
			},
			wantErr: true,
		},
		{
			name: "malformed date",
			request: dto.AddExpenseRequest{
				Category: "Food",
				Amount:   decimal.RequireFromString("12.50"),
				Date:     "15/03/2024",
			},
			wantErr: true,
		},
		{
			name: "missing date",
			request: dto.AddExpenseRequest{
				Category: "Food",
				Amount:   decimal.RequireFromString("12.50"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.GetValidate().Struct(tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_UpdateExpenseRequest_OmitsEmptyFields(t *testing.T) {
	v := NewValidator()

	// A fully empty update passes validation, the service rejects it later
	assert.NoError(t, v.GetValidate().Struct(dto.UpdateExpenseRequest{}))

	category := "Transport"
	assert.NoError(t, v.GetValidate().Struct(dto.UpdateExpenseRequest{Category: &category}))

	badCategory := "Lottery"
	assert.Error(t, v.GetValidate().Struct(dto.UpdateExpenseRequest{Category: &badCategory}))
}

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewValidator()

	valid := dto.RegisterRequest{Username: "alice", Password: "SecurePass1", Email: "alice@example.com"}
	assert.NoError(t, v.GetValidate().Struct(valid))

	shortUsername := dto.RegisterRequest{Username: "ab", Password: "SecurePass1"}
	assert.Error(t, v.GetValidate().Struct(shortUsername))

	badEmail := dto.RegisterRequest{Username: "alice", Password: "SecurePass1", Email: "not-an-email"}
	assert.Error(t, v.GetValidate().Struct(badEmail))

	noEmail := dto.RegisterRequest{Username: "alice", Password: "SecurePass1"}
	assert.NoError(t, v.GetValidate().Struct(noEmail))
}

func TestFormatValidationErrors_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.GetValidate().Struct(dto.AddExpenseRequest{
		Category: "Gambling",
		Amount:   decimal.Zero,
		Date:     "",
	})
	require.Error(t, err)

	fieldErrors := FormatValidationErrors(err)

	assert.Equal(t, "must be one of the supported expense categories", fieldErrors["category"])
	assert.Equal(t, "must be greater than zero", fieldErrors["amount"])
	assert.Equal(t, "this field is required", fieldErrors["date"])
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	fieldErrors := FormatValidationErrors(errors.New("boom"))

	assert.Equal(t, "boom", fieldErrors["request"])
}
