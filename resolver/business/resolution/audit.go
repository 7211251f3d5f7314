package resolution

import (
	"context"
	"encoding/json"

	"encore.dev/rlog"

	"pickup.app/resolver/model"
)

type failurePayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// audit writes the record for one resolve call in the background.
// A nil cause marks the call successful, whatever its eligibility.
func (b *business) audit(q model.ResolveQuery, resp *model.ResolveResponse, cause error) {
	record := &model.ResolveRecord{
		Query:     q,
		Success:   cause == nil,
		CreatedAt: b.now().UTC(),
	}

	var payload any = resp
	if cause != nil {
		msg := cause.Error()
		record.ErrorMessage = &msg
		payload = failurePayload{Error: "internal server error", Message: msg}
	}

	if body, err := json.Marshal(payload); err == nil {
		record.Response = body
	} else {
		rlog.Warn("resolve response not encodable", "error", err)
	}

	runAsync("record resolve request", func(ctx context.Context) error {
		return b.catalog.RecordRequest(ctx, record)
	})
}
