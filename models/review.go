package models

// Review is an immutable product review. UserName is denormalized from the
// author's profile at write time and never kept in sync afterwards.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"createdAt"`
}

// AddReviewRequest is the POST /products/:id/reviews payload.
type AddReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
