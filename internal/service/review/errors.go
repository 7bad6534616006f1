package review

import "errors"

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrNotEligible    = errors.New("user is not eligible to review this shipment")
	ErrReviewNotFound = errors.New("review not found")
)
