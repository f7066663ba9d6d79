package dto

type CreatePostRequest struct {
	Quote     string  `json:"quote"`
	Reference string  `json:"reference"`
	Insight   string  `json:"insight"`
	Remember  *string `json:"remember"`
	Date      string  `json:"date"`
}

type EditPostRequest struct {
	ID        string  `json:"id"`
	Quote     *string `json:"quote"`
	Reference *string `json:"reference"`
	Insight   *string `json:"insight"`
	Remember  *string `json:"remember"`
	Date      *string `json:"date"`
}
