package model

import "time"

// Metadata is the audit block carried by every table.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

func NewMetadata(by string, at time.Time) Metadata {
	return Metadata{
		CreatedAt:  at,
		ModifiedAt: at,
		CreatedBy:  by,
		ModifiedBy: by,
	}
}

// Touch stamps a modification.
func (m *Metadata) Touch(by string, at time.Time) {
	m.ModifiedAt = at
	m.ModifiedBy = by
}
