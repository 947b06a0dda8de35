package types

type RecommendationRequest struct {
	Action string `json:"action"`
	BlogID int64  `json:"blogId"`
}
