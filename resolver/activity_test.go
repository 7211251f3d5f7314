package resolver

import (
	"context"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pickup.app/resolver/business"
	"pickup.app/resolver/config"
	"pickup.app/resolver/mocks/business/catalog_business"
	"pickup.app/resolver/model"
)

func TestRecentActivity(t *testing.T) {
	cfg, err := config.Default("local")
	require.NoError(t, err)

	testCases := []struct {
		name          string
		limit         int
		expectedLimit int
		mockReturn    []model.ResolveRecord
		mockError     error
		expectSuccess bool
	}{
		{
			name:          "default_limit",
			limit:         0,
			expectedLimit: cfg.Activity.DefaultLimit,
			mockReturn:    []model.ResolveRecord{{ID: "req-2", Success: true}, {ID: "req-1", Success: true}},
			expectSuccess: true,
		},
		{
			name:          "explicit_limit",
			limit:         5,
			expectedLimit: 5,
			mockReturn:    []model.ResolveRecord{},
			expectSuccess: true,
		},
		{
			name:          "limit_clamped",
			limit:         10000,
			expectedLimit: cfg.Activity.MaxLimit,
			mockReturn:    []model.ResolveRecord{},
			expectSuccess: true,
		},
		{
			name:          "business_error",
			limit:         5,
			expectedLimit: 5,
			mockError:     &errs.Error{Code: errs.Internal, Message: "failed to list resolve requests"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCatalog := catalog_business.NewMockBusiness(ctrl)
			service := &Service{
				business: business.Businesses{Catalog: mockCatalog},
				config:   cfg,
			}

			mockCatalog.EXPECT().
				RecentRequests(gomock.Any(), tc.expectedLimit).
				Return(tc.mockReturn, tc.mockError)

			resp, err := service.RecentActivity(context.Background(), &ActivityRequest{Limit: tc.limit})

			if tc.expectSuccess {
				require.NoError(t, err)
				assert.Equal(t, tc.mockReturn, resp.Requests)
			} else {
				assert.Nil(t, resp)
				assert.Equal(t, errs.Internal, errs.Code(err))
			}
		})
	}
}

func TestActivityRequestValidate(t *testing.T) {
	assert.NoError(t, (&ActivityRequest{}).Validate())
	assert.NoError(t, (&ActivityRequest{Limit: 20}).Validate())
	assert.Equal(t, errs.InvalidArgument, errs.Code((&ActivityRequest{Limit: -1}).Validate()))
}
