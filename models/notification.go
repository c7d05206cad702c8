package models

import "time"

// ChangeNotification is the webhook/push payload delivered when the remote
// catalog changes. EventID is the deduplication key: redelivered events reuse
// the same id.
type ChangeNotification struct {
	EventID    string           `json:"event_id"`
	EventType  string           `json:"event_type"`
	APIVersion string           `json:"api_version"`
	CreatedAt  time.Time        `json:"created_at"`
	Data       NotificationData `json:"data"`
}

// NotificationData identifies the catalog object a notification is about.
type NotificationData struct {
	ObjectID   string `json:"object_id"`
	ObjectType string `json:"object_type"`
	EventType  string `json:"event_type"`
}
