package catalog

import (
	"context"
	"encoding/json"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"pickup.app/resolver/model"
	"pickup.app/resolver/store/convert"
	"pickup.app/resolver/store/requests"
)

// RecordRequest appends one entry to the resolve audit log.
func (b *business) RecordRequest(ctx context.Context, record *model.ResolveRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	request, err := json.Marshal(record.Query)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to encode resolve request"}
	}

	var response []byte
	if len(record.Response) > 0 {
		response = record.Response
	}

	err = b.requestRepo.CreateResolveRequest(ctx, requests.CreateResolveRequestParams{
		ID:           record.ID,
		Request:      request,
		Platform:     record.Query.Platform,
		Url:          record.Query.URL,
		Zip:          convert.Text(record.Query.ZIP),
		Response:     response,
		Success:      record.Success,
		ErrorMessage: convert.TextPtr(record.ErrorMessage),
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to record resolve request"}
	}
	return nil
}

// RecentRequests returns the newest audit entries first.
func (b *business) RecentRequests(ctx context.Context, limit int) ([]model.ResolveRecord, error) {
	if limit <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "limit must be positive"}
	}

	dbRequests, err := b.requestRepo.ListRecentResolveRequests(ctx, int32(limit))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list resolve requests"}
	}

	records := make([]model.ResolveRecord, len(dbRequests))
	for i, dbRequest := range dbRequests {
		records[i] = convertDBRequestToModel(dbRequest)
	}
	return records, nil
}

// convertDBRequestToModel converts a database ResolveRequest to a domain model ResolveRecord
func convertDBRequestToModel(dbRequest requests.ResolveRequest) model.ResolveRecord {
	record := model.ResolveRecord{
		ID:           dbRequest.ID,
		Success:      dbRequest.Success,
		ErrorMessage: convert.StringOrNil(dbRequest.ErrorMessage),
		CreatedAt:    dbRequest.CreatedAt.Time,
	}

	if err := json.Unmarshal(dbRequest.Request, &record.Query); err != nil {
		rlog.Warn("resolve request not decodable", "id", dbRequest.ID, "error", err)
		record.Query = model.ResolveQuery{Platform: dbRequest.Platform, URL: dbRequest.Url, ZIP: dbRequest.Zip.String}
	}
	if len(dbRequest.Response) > 0 {
		record.Response = json.RawMessage(dbRequest.Response)
	}

	return record
}
