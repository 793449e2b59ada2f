package domain

import "time"

// AuditFields holds creation and last-update timestamps shared by persisted entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"updatedAt"`
}
