package response

import (
	"github.com/vietanh2810/youthopia-api/internal/domain"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type AdminLoginResponse struct {
	Token string           `json:"token"`
	Admin domain.AdminUser `json:"admin"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

type NotificationsResponse struct {
	Notification *domain.Notification `json:"notification"`
	Achievements []domain.Achievement `json:"achievements"`
}

type RankResponse struct {
	Rank *int `json:"rank"`
}

type QRCodeResponse struct {
	Code string `json:"code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
