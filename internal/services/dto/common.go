package dto

// PaginationQuery is bound from list endpoint query strings.
type PaginationQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

func (q *PaginationQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}
}

// PaginatedResponse is the envelope for every list endpoint.
type PaginatedResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int64       `json:"totalPages"`
}

func NewPaginatedResponse(items interface{}, total int64, page, pageSize int) *PaginatedResponse {
	pages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		pages++
	}
	return &PaginatedResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
	}
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
