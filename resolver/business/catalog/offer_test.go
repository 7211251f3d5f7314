package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pickup.app/resolver/mocks/store/offer_repo"
	"pickup.app/resolver/model"
	"pickup.app/resolver/store/offers"
)

func TestListOffers(t *testing.T) {
	seen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		mockReturn    []offers.Offer
		mockError     error
		expectedCount int
		expectedError string
		expectSuccess bool
	}{
		{
			name: "happy_case",
			mockReturn: []offers.Offer{
				{
					ID:               "offer-1",
					ProductID:        "prod-1",
					StoreID:          "store-1",
					Price:            "$329.99",
					Currency:         "USD",
					AvailabilityType: "pickup",
					Eta:              "2 hr",
					EtaMinutes:       120,
					Distance:         "1.2 mi",
					DistanceMiles:    1.2,
					InStock:          true,
					StockLevel:       pgtype.Int4{Int32: 4, Valid: true},
					LastSeen:         pgtype.Timestamptz{Time: seen, Valid: true},
					Margin:           pgtype.Float8{Float64: 42, Valid: true},
					TrustScore:       95,
					IsEligible:       true,
				},
				{
					ID:               "offer-2",
					ProductID:        "prod-1",
					StoreID:          "store-2",
					AvailabilityType: "delivery",
					TrustScore:       90,
				},
			},
			expectedCount: 2,
			expectSuccess: true,
		},
		{
			name:          "no_offers",
			mockReturn:    []offers.Offer{},
			expectedCount: 0,
			expectSuccess: true,
		},
		{
			name:          "database_error",
			mockError:     assert.AnError,
			expectedError: "failed to list offers",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := offer_repo.NewMockQuerier(ctrl)
			business := &business{offerRepo: mockRepo}

			mockRepo.EXPECT().
				ListOffersByProduct(gomock.Any(), "prod-1").
				Return(tc.mockReturn, tc.mockError)

			result, err := business.ListOffers(context.Background(), "prod-1")

			if !tc.expectSuccess {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.Len(t, result, tc.expectedCount)
			if tc.expectedCount == 0 {
				return
			}

			first := result[0]
			assert.Equal(t, model.AvailabilityPickup, first.AvailabilityType)
			assert.Equal(t, 120, first.ETAMinutes)
			assert.Equal(t, seen, first.LastSeen)
			require.NotNil(t, first.StockLevel)
			assert.Equal(t, 4, *first.StockLevel)
			require.NotNil(t, first.Margin)
			assert.Equal(t, 42.0, *first.Margin)
			assert.Nil(t, first.DeepLink)

			// missing margin stays absent rather than zero
			assert.Nil(t, result[1].Margin)
			assert.Nil(t, result[1].StockLevel)
		})
	}
}
