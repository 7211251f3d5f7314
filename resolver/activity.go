package resolver

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"pickup.app/resolver/model"
)

type ActivityRequest struct {
	Limit int `query:"limit"`
}

type ActivityResponse struct {
	Requests []model.ResolveRecord `json:"requests"`
}

// RecentActivity lists the latest resolve calls, newest first.
//
//encore:api public path=/v1/activity method=GET tag:requestlog
func (s *Service) RecentActivity(ctx context.Context, req *ActivityRequest) (*ActivityResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = s.config.Activity.DefaultLimit
	}
	if limit > s.config.Activity.MaxLimit {
		limit = s.config.Activity.MaxLimit
	}

	records, err := s.business.Catalog.RecentRequests(ctx, limit)
	if err != nil {
		rlog.Error("failed to list recent activity", "limit", limit, "error", err)
		return nil, err
	}

	return &ActivityResponse{Requests: records}, nil
}

func (r *ActivityRequest) Validate() error {
	if r.Limit < 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "limit must not be negative"}
	}
	return nil
}
