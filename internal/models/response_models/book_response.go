package response_models

import "github.com/google/uuid"

type BookResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Publisher   string    `json:"publisher"`
	ISBN        string    `json:"isbn"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
}

type ReviewResponse struct {
	ID      uuid.UUID `json:"id"`
	BookID  uuid.UUID `json:"book_id"`
	Author  string    `json:"author"` // display name of the reviewer
	Comment string    `json:"comment"`
	Rating  int       `json:"rating"`
	Posted  int64     `json:"posted"`
}
