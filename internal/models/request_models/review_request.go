package request_models

type CreateReviewRequest struct {
	Comment string `json:"comment" binding:"required,max=4000"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}
