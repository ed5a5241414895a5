// Package domain holds DTOs for the parse http and service contracts
package domain

// ParseRequest mirrors the Duckling form contract. locale and dims are
// accepted for drop-in compatibility: locale is informational and dims is
// ignored because the dispatcher always attempts both dimensions.
type ParseRequest struct {
	Locale  string `form:"locale" validate:"omitempty,max=16" example:"hi_IN"`
	Text    string `form:"text" example:"दस मिनट का टाइमर"`
	RefTime string `form:"reftime" validate:"omitempty,max=64" example:"2024-01-15T08:00:00+05:30"`
	Dims    string `form:"dims" validate:"omitempty,json" example:"[\"time\", \"duration\"]"`
}
