package domain

// NotificationType é a severidade de uma notificação.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification é a mensagem global exibida no banner.
type Notification struct {
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
}
