package user

import "time"

type CreateUserRequest struct {
	Name     string
	Username string
	Password string
}

// ProfileResponse is the public author card.
type ProfileResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	CreatedAt      time.Time `json:"createdAt"`
	BlogCount      int64     `json:"blogCount"`
	FollowerCount  int64     `json:"followerCount"`
	FollowingCount int64     `json:"followingCount"`
}
