package domain

import "time"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationWarning NotificationKind = "warning"
	NotificationInfo    NotificationKind = "info"
)

type Notification struct {
	ID        string
	Kind      NotificationKind
	Message   string
	Timestamp time.Time
}
