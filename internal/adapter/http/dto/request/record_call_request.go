package request

import "encoding/json"

// RecordCallRequest is the call report the gateway client posts after
// every outbound API call. ID is the caller-assigned call identifier;
// Response may be absent, null or false when the call failed.
type RecordCallRequest struct {
	ID       *int            `json:"id" binding:"required"`
	Request  json.RawMessage `json:"request"`
	Response json.RawMessage `json:"response"`
}
