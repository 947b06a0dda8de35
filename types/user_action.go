package types

// FollowStatusResponse 当前用户与作者的关系
type FollowStatusResponse struct {
	Following bool `json:"following"`
	Muted     bool `json:"muted"`
}
