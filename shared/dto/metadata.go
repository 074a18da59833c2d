package dto

import (
	"proccms/shared/constant"
	"proccms/shared/model"
	"proccms/shared/timezone"
)

// Metadata is the audit block embedded in every response. Keys use the
// createdAt/updatedAt names the web client reads.
type Metadata struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = timezone.Format(metadata.CreatedAt, constant.DateFormat)
	m.UpdatedAt = timezone.Format(metadata.ModifiedAt, constant.DateFormat)
	m.CreatedBy = metadata.CreatedBy
	m.UpdatedBy = metadata.ModifiedBy
}
