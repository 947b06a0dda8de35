package types

import "time"

type NotificationItem struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationListResponse struct {
	Notifications []NotificationItem `json:"notifications"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
