package dto_test

import (
	"testing"

	"suitespot/internal/domains/guest/model/dto"
	"suitespot/shared"
	"suitespot/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGuestRequest_ToModel(t *testing.T) {
	req := dto.CreateGuestRequest{
		FirstName:   " Ada ",
		LastName:    "Lovelace",
		Email:       "ADA@example.com",
		IDNumber:    " AB123 ",
		DateOfBirth: "1990-12-10",
	}

	guest := req.ToModel("front-desk")

	assert.NotEmpty(t, guest.ID)
	assert.Equal(t, "Ada", guest.FirstName)
	assert.Equal(t, "ada@example.com", guest.Email)
	assert.Equal(t, "AB123", guest.IDNumber)
	assert.True(t, guest.Active)
	require.NotNil(t, guest.DateOfBirth)
	assert.Equal(t, "1990-12-10", guest.DateOfBirth.Format("2006-01-02"))
	assert.Equal(t, "front-desk", guest.CreatedBy)
}

func TestCreateGuestRequest_Validation(t *testing.T) {
	req := dto.CreateGuestRequest{FirstName: "Ada", LastName: "Lovelace", Email: "not-an-email"}
	assert.Error(t, validator.ValidateStruct(&req))

	req.Email = "ada@example.com"
	req.DateOfBirth = "10/12/1990"
	assert.Error(t, validator.ValidateStruct(&req))

	req.DateOfBirth = "1990-12-10"
	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestUpdateGuestRequest_Fields(t *testing.T) {
	city := "London"
	req := dto.UpdateGuestRequest{Email: " Ada@Example.com", City: &city, DateOfBirth: "1990-12-10"}
	req.Normalize()

	fields := shared.TransformFields(req, "front-desk")

	assert.Equal(t, "ada@example.com", fields["email"])
	assert.Equal(t, &city, fields["city"])
	assert.Contains(t, fields, "date_of_birth")
	assert.NotContains(t, fields, "-")
	assert.NotContains(t, fields, "first_name")
}

func TestGuestFilter_ToFilterGroup(t *testing.T) {
	active := true
	group := dto.GuestFilter{Name: "ada", Active: &active}.ToFilterGroup()

	where, args := group.GetWhereClause()

	assert.Contains(t, where, "LOWER(first_name) LIKE LOWER(:name_first)")
	assert.Contains(t, where, " OR ")
	assert.Equal(t, "%ada%", args["name_last"])
	assert.Equal(t, true, args["active"])
}
