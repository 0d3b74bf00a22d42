package dto

// CourseRequest payload for admin course create/update.
type CourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Published   bool    `json:"published"`
}
