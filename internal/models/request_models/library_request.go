package request_models

import "github.com/google/uuid"

type AddShelfItemRequest struct {
	BookID uuid.UUID `json:"book_id" binding:"required"`
	Status string    `json:"status" binding:"omitempty,oneof=want_to_read reading finished"`
}

type UpdateShelfItemRequest struct {
	Status string `json:"status" binding:"required,oneof=want_to_read reading finished"`
}

type AddWishedBookRequest struct {
	BookID uuid.UUID `json:"book_id" binding:"required"`
}
