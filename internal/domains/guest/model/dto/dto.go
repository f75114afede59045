package dto

import (
	"strconv"
	"strings"
	"suitespot/internal/domains/guest/model"
	"suitespot/shared"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	gModel "suitespot/shared/model"
	"suitespot/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName   string `json:"first_name"    validate:"required,max=100"`
	LastName    string `json:"last_name"     validate:"required,max=100"`
	Email       string `json:"email"         validate:"required,email,max=255"`
	Phone       string `json:"phone"         validate:"omitempty,max=30"`
	IDNumber    string `json:"id_number"     validate:"omitempty,max=50"`
	IDType      string `json:"id_type"       validate:"omitempty,max=30"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,date"`
	Address     string `json:"address"       validate:"omitempty,max=255"`
	City        string `json:"city"          validate:"omitempty,max=100"`
	Country     string `json:"country"       validate:"omitempty,max=100"`
	Preferences string `json:"preferences"   validate:"omitempty,max=500"`
	Active      *bool  `json:"active"        validate:"omitempty"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	now := timezone.Now()

	return model.Guest{
		ID:          uuid.NewString(),
		FirstName:   strings.TrimSpace(c.FirstName),
		LastName:    strings.TrimSpace(c.LastName),
		Email:       strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:       c.Phone,
		IDNumber:    strings.TrimSpace(c.IDNumber),
		IDType:      c.IDType,
		DateOfBirth: parseBirthDate(c.DateOfBirth),
		Address:     c.Address,
		City:        c.City,
		Country:     c.Country,
		Preferences: c.Preferences,
		Active:      active,
		Metadata:    gModel.NewMetadata(user, now),
	}
}

type UpdateGuestRequest struct {
	FirstName   string     `db:"first_name"    json:"first_name"    validate:"omitempty,max=100"`
	LastName    string     `db:"last_name"     json:"last_name"     validate:"omitempty,max=100"`
	Email       string     `db:"email"         json:"email"         validate:"omitempty,email,max=255"`
	Phone       *string    `db:"phone"         json:"phone"         validate:"omitempty,max=30"`
	IDNumber    *string    `db:"id_number"     json:"id_number"     validate:"omitempty,max=50"`
	IDType      *string    `db:"id_type"       json:"id_type"       validate:"omitempty,max=30"`
	DateOfBirth string     `db:"-"             json:"date_of_birth" validate:"omitempty,date"`
	Address     *string    `db:"address"       json:"address"       validate:"omitempty,max=255"`
	City        *string    `db:"city"          json:"city"          validate:"omitempty,max=100"`
	Country     *string    `db:"country"       json:"country"       validate:"omitempty,max=100"`
	Preferences *string    `db:"preferences"   json:"preferences"   validate:"omitempty,max=500"`
	Active      *bool      `db:"active"        json:"active"        validate:"omitempty"`
	BirthDate   *time.Time `db:"date_of_birth" json:"-"`
}

// Normalize resolves derived columns before the request is turned into an update set.
func (u *UpdateGuestRequest) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.BirthDate = parseBirthDate(u.DateOfBirth)
}

type GuestResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	IDNumber    string `json:"id_number"`
	IDType      string `json:"id_type"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Preferences string `json:"preferences"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.FullName = model.FullName()
	r.Email = model.Email
	r.Phone = model.Phone
	r.IDNumber = model.IDNumber
	r.IDType = model.IDType
	r.Address = model.Address
	r.City = model.City
	r.Country = model.Country
	r.Preferences = model.Preferences
	r.Active = model.Active
	r.Metadata = gDto.MetadataOf(model.Metadata)

	if model.DateOfBirth != nil {
		r.DateOfBirth = model.DateOfBirth.Format(constant.DateOnlyFormat)
	}
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

// GuestFilter narrows guest listings. Name matches first or last name.
type GuestFilter struct {
	Name   string
	Active *bool
}

func (f GuestFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := strings.TrimSpace(f.Name); name != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldFirstName, ArgName: "name_first", Value: name, Operator: gDto.FilterOperatorLike},
				gDto.Filter{Field: model.FieldLastName, ArgName: "name_last", Value: name, Operator: gDto.FilterOperatorLike},
			},
		})
	}

	if f.Active != nil {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldActive, Value: *f.Active, Operator: gDto.FilterOperatorEq})
	}

	return group
}

func (f GuestFilter) CacheKey() string {
	active := "-"
	if f.Active != nil {
		active = strconv.FormatBool(*f.Active)
	}

	return strings.ToLower(strings.TrimSpace(f.Name)) + "," + active
}

func parseBirthDate(value string) *time.Time {
	if value == constant.Empty {
		return nil
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return nil
	}

	return &date
}
