package dto

// PreviewResponse share-card metadata for GET /api/tools/social-preview.
type PreviewResponse struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
