package response

import (
	"encoding/json"
	"time"

	"csob_gateway/internal/domain/entities"
)

type ArchivedCallResponse struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	CallID     int       `json:"call_id"`
	Failed     bool      `json:"failed"`
	RecordedAt time.Time `json:"recorded_at"`

	Request  json.RawMessage `json:"request,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
}

func FromArchivedCall(call entities.ArchivedCall) ArchivedCallResponse {
	return ArchivedCallResponse{
		ID:         call.ID,
		MerchantID: call.MerchantID,
		CallID:     call.CallID,
		Failed:     call.Failed,
		RecordedAt: call.RecordedAt,
		Request:    call.Request,
		Response:   call.Response,
	}
}

func FromArchivedCalls(calls []entities.ArchivedCall) []ArchivedCallResponse {
	out := make([]ArchivedCallResponse, 0, len(calls))
	for _, call := range calls {
		out = append(out, FromArchivedCall(call))
	}
	return out
}
