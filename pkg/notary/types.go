package notary

import (
	"encoding/json"

	"github.com/chainsafe/fabric-notary-gateway/pkg/dispatch"
)

// CreateParticipantRequest is the input of IdentityContract.createParticipant.
type CreateParticipantRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AddNotaryLogRequest is the caller supplied part of a notary log entry.
// The log id and timestamp are generated on dispatch.
type AddNotaryLogRequest struct {
	ParticipantID string `json:"participant_id"`
	Type          string `json:"type"`
	Text          string `json:"text"`
}

// Result is the outcome of a contract operation as returned to API clients.
type Result struct {
	Contract  string          `json:"contract"`
	Operation string          `json:"operation"`
	LogID     string          `json:"log_id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// newResult converts a dispatch result. Non-JSON payloads are returned as a JSON string.
func newResult(res *dispatch.Result) *Result {
	out := &Result{
		Contract:  res.Contract,
		Operation: res.Operation,
		LogID:     res.LogID,
	}
	switch {
	case len(res.Payload) == 0:
	case json.Valid(res.Payload):
		out.Payload = res.Payload
	default:
		out.Payload, _ = json.Marshal(string(res.Payload))
	}
	return out
}
