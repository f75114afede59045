package dto

import (
	"suitespot/shared/constant"
	"suitespot/shared/model"
	"suitespot/shared/timezone"
)

// Metadata renders the audit block in the hotel's timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func MetadataOf(m model.Metadata) Metadata {
	return Metadata{
		CreatedAt:  timezone.Format(m.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(m.ModifiedAt, constant.DateFormat),
		CreatedBy:  m.CreatedBy,
		ModifiedBy: m.ModifiedBy,
	}
}
