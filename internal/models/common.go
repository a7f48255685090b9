package models

import "time"

// AuditFields holds the row bookkeeping columns shared by every table.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
}
