package validator_test

import (
	"net/http"
	"strings"
	"suitespot/shared/failure"
	"suitespot/shared/validator"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guestRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Floor     int    `json:"floor"      validate:"gte=0,lte=50"`
	IDType    string `json:"id_type"    validate:"omitempty,oneof=passport national_id driver_license"`
}

func TestValidateStruct(t *testing.T) {
	valid := guestRequest{FirstName: "John", Email: "john@example.com", Floor: 1, IDType: "passport"}

	tests := []struct {
		name    string
		mutate  func(r *guestRequest)
		message string
	}{
		{name: "valid", mutate: func(*guestRequest) {}},
		{name: "missing name", mutate: func(r *guestRequest) { r.FirstName = "" }, message: "FirstName is required"},
		{name: "bad email", mutate: func(r *guestRequest) { r.Email = "john" }, message: "Email must be a valid email address"},
		{name: "floor too high", mutate: func(r *guestRequest) { r.Floor = 51 }, message: "Floor must be less than or equal to 50"},
		{name: "unknown id type", mutate: func(r *guestRequest) { r.IDType = "library_card" }, message: "IDType must be one of passport national_id driver_license"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("7b0c5a52-4a43-4d0c-9a51-1f1f6a0f2b8e", "uuid"))
	err := validator.ValidateVar("room-101", "uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a valid id")

	assert.NoError(t, validator.ValidateVar("", "omitempty,date"))
	assert.Error(t, validator.ValidateVar("2024-02-30", "date"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"first_name":"John","email":"john@example.com","floor":2}`},
		{name: "rule violation", body: `{"first_name":"John","email":"nope"}`, wantErr: true},
		{name: "malformed", body: `{"first_name":`, wantErr: true},
		{name: "empty object", body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req guestRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "John", req.FirstName)
			}
		})
	}
}

type StayTestStruct struct {
	CheckIn  string          `validate:"required,date" json:"check_in"`
	CheckOut string          `validate:"omitempty,date" json:"check_out"`
	Clock    string          `validate:"omitempty,clock" json:"clock"`
	Amount   decimal.Decimal `validate:"money" json:"amount"`
	Discount string          `validate:"omitempty,money" json:"discount"`
}

func TestCustomValidations(t *testing.T) {
	tests := []struct {
		name        string
		data        StayTestStruct
		expectError string
	}{
		{
			name: "valid stay",
			data: StayTestStruct{CheckIn: "2024-03-10", CheckOut: "2024-03-12", Clock: "14:00", Amount: decimal.RequireFromString("200.00"), Discount: "10"},
		},
		{
			name:        "bad date",
			data:        StayTestStruct{CheckIn: "10/03/2024"},
			expectError: "CheckIn must be a date in YYYY-MM-DD format",
		},
		{
			name:        "bad clock",
			data:        StayTestStruct{CheckIn: "2024-03-10", Clock: "2pm"},
			expectError: "Clock must be a time in HH:MM format",
		},
		{
			name:        "negative amount",
			data:        StayTestStruct{CheckIn: "2024-03-10", Amount: decimal.NewFromInt(-1)},
			expectError: "Amount must be a non negative amount",
		},
		{
			name:        "non numeric discount",
			data:        StayTestStruct{CheckIn: "2024-03-10", Discount: "ten"},
			expectError: "Discount must be a non negative amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError == "" {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil || err.Error() != tt.expectError {
				t.Errorf("expected %q, got %v", tt.expectError, err)
			}
		})
	}
}
