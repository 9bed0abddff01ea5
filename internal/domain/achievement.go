package domain

// Achievement is a named, pure predicate over a user's state.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	IsUnlocked func(user *User, events []UserEvent) bool `json:"-"`
}

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationError   NotificationType = "error"
)

type Notification struct {
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}
