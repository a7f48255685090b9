package domain

import "time"

// AuditFields holds creation information for records that are immutable after insert.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
}
