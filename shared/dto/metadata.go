package dto

import (
	"drivent/shared/constant"
	"drivent/shared/model"
	"drivent/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls ordering and paging of list queries. Zero values
// disable the corresponding clause.
type QueryParams struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string
}
