package v1

import (
	"github.com/rkas-pintar/backend/internal/types"
	ez_uuid "github.com/rkas-pintar/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIIndex struct {
	URIID
	Index int `uri:"index" example:"0"` // Index of the realization within its budget line
}

type QueryPeriod struct {
	Month types.Month `form:"month" example:"3"`   // The calendar month, 1 to 12
	Year  int         `form:"year" example:"2024"` // The fiscal year
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
