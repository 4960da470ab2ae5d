package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrBookNotFound   = errors.New("book not found")
	ErrAlreadyShelved = errors.New("book already on shelf")
	ErrAlreadyWished  = errors.New("book already on wishlist")

	// Subscription billing errors. All of these are expected business
	// outcomes surfaced to the caller unchanged, never retried.
	ErrNotEnoughPoints      = errors.New("not enough points")
	ErrAlreadySubscribed    = errors.New("already subscribed")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSubscriptionCanceled = errors.New("subscription already canceled")

	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
