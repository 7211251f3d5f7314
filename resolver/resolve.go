package resolver

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"pickup.app/resolver/model"
)

type ResolveRequest struct {
	Identifiers model.Identifiers `json:"identifiers"`
	Brand       string            `json:"brand,omitempty" validate:"max=200"`
	Title       string            `json:"title,omitempty" validate:"max=500"`
	Variant     string            `json:"variant,omitempty" validate:"max=200"`
	Price       string            `json:"price,omitempty" validate:"max=50"`
	Currency    string            `json:"currency,omitempty" validate:"max=10"`
	Attributes  map[string]string `json:"attributes,omitempty" validate:"max=100"`
	Platform    string            `json:"platform" validate:"required,max=50"`
	URL         string            `json:"url" validate:"required,url,max=2048"`
	ZIP         string            `json:"zip,omitempty" validate:"omitempty,max=10"`
}

// Resolve returns the ranked local pickup and delivery offers for a scraped product.
//
//encore:api public path=/v1/resolve method=POST tag:requestlog
func (s *Service) Resolve(ctx context.Context, req *ResolveRequest) (*model.ResolveResponse, error) {
	resp, err := s.business.Resolution.Resolve(ctx, req.query())
	if err != nil {
		rlog.Error("failed to resolve product", "platform", req.Platform, "error", err)
		return nil, err
	}
	return resp, nil
}

// Validate implements validation for ResolveRequest using go-playground/validator
func (r *ResolveRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "invalid resolve request",
			Details: validationDetails(err),
		}
	}
	return nil
}

func (r *ResolveRequest) query() model.ResolveQuery {
	return model.ResolveQuery{
		Identifiers: model.Identifiers{
			GTIN: strings.TrimSpace(r.Identifiers.GTIN),
			UPC:  strings.TrimSpace(r.Identifiers.UPC),
			EAN:  strings.TrimSpace(r.Identifiers.EAN),
			ASIN: strings.TrimSpace(r.Identifiers.ASIN),
			SKU:  strings.TrimSpace(r.Identifiers.SKU),
		},
		Brand:      strings.TrimSpace(r.Brand),
		Title:      strings.TrimSpace(r.Title),
		Variant:    strings.TrimSpace(r.Variant),
		Price:      strings.TrimSpace(r.Price),
		Currency:   strings.ToUpper(strings.TrimSpace(r.Currency)),
		Attributes: r.Attributes,
		Platform:   strings.ToLower(strings.TrimSpace(r.Platform)),
		URL:        strings.TrimSpace(r.URL),
		ZIP:        strings.TrimSpace(r.ZIP),
	}
}
