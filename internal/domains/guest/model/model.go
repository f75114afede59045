package model

import (
	"strings"
	"suitespot/shared/model"
	"time"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldIDNumber    = "id_number"
	FieldIDType      = "id_type"
	FieldDateOfBirth = "date_of_birth"
	FieldActive      = "active"
)

type Guest struct {
	ID          string     `db:"id"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	IDNumber    string     `db:"id_number"`
	IDType      string     `db:"id_type"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	Address     string     `db:"address"`
	City        string     `db:"city"`
	Country     string     `db:"country"`
	Preferences string     `db:"preferences"`
	Active      bool       `db:"active"`
	model.Metadata
}

func (g Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// MatchesIdentity compares a presented identity document number with the stored one, ignoring case and surrounding spaces.
func (g Guest) MatchesIdentity(idNumber string) bool {
	return strings.EqualFold(strings.TrimSpace(g.IDNumber), strings.TrimSpace(idNumber))
}

// MatchesName reports whether every token of query is a substring of the first or last name.
func (g Guest) MatchesName(query string) bool {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return false
	}

	first := strings.ToLower(g.FirstName)
	last := strings.ToLower(g.LastName)

	for _, token := range tokens {
		if !strings.Contains(first, token) && !strings.Contains(last, token) {
			return false
		}
	}

	return true
}
