package entities

import (
	"encoding/json"
	"time"
)

// ArchivedCall is one persisted diagnostic entry: a single outbound
// gateway call (request plus response snapshot) flushed from the
// in-memory recorder into DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (archive uuid, not the caller-assigned call id)
//   - GSI1 (merchant_id-index): merchant_id
//
// Request/Response keep the original JSON for traceability; Failed marks
// calls whose response was absent or empty.
type ArchivedCall struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	CallID     int       `json:"call_id"`
	Failed     bool      `json:"failed"`
	RecordedAt time.Time `json:"recorded_at"`

	Request  json.RawMessage `json:"request,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
}
