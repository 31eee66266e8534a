package requests

// OCRRequest asks for receipt extraction from an uploaded image.
type OCRRequest struct {
	ImageURL string `json:"image_url"`
	UserID   string `json:"user_id"`
}

// NewsRequest asks for the news digest of one course.
type NewsRequest struct {
	CourseID string `json:"course_id"`
}
