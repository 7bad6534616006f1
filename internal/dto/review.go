package dto

type ReviewCreate struct {
	UserID  int64   `json:"user_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

type ReviewCreateResponse struct {
	ReviewID int64 `json:"review_id"`
	Created  bool  `json:"created"`
}
