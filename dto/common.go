package dto

// ListQuery carries the shared paging/filtering query parameters.
type ListQuery struct {
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
	Name  string `form:"name"`
}

// Normalize applies the defaults the listing endpoints assume.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
}
