package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pickup.app/resolver/mocks/store/product_repo"
	"pickup.app/resolver/model"
	"pickup.app/resolver/store/products"
)

func TestFindOrCreateProduct(t *testing.T) {
	query := model.ResolveQuery{
		Identifiers: model.Identifiers{ASIN: "B0BXQBHL5D"},
		Platform:    "amazon",
		URL:         "https://amazon.com/dp/B0BXQBHL5D",
		ZIP:         "10001",
	}
	existing := products.Product{
		ID:       "prod-1",
		Asin:     pgtype.Text{String: "B0BXQBHL5D", Valid: true},
		Brand:    "Sony",
		Title:    "WH-1000XM5",
		Currency: "USD",
		Platform: "amazon",
		Url:      "https://amazon.com/dp/B0BXQBHL5D",
	}

	testCases := []struct {
		name           string
		lookupReturn   products.Product
		lookupError    error
		expectCreate   bool
		createReturn   products.Product
		createError    error
		expectRelookup bool
		relookupError  error
		expectedID     string
		expectedError  string
		expectSuccess  bool
	}{
		{
			name:          "existing_product",
			lookupReturn:  existing,
			expectedID:    "prod-1",
			expectSuccess: true,
		},
		{
			name:          "created_on_first_sight",
			lookupError:   pgx.ErrNoRows,
			expectCreate:  true,
			createReturn:  products.Product{ID: "prod-new", Brand: model.UnknownBrand, Title: model.UnknownTitle, Currency: "USD"},
			expectedID:    "prod-new",
			expectSuccess: true,
		},
		{
			name:           "concurrent_create_resolves_to_existing",
			lookupError:    pgx.ErrNoRows,
			expectCreate:   true,
			createError:    &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectRelookup: true,
			expectedID:     "prod-1",
			expectSuccess:  true,
		},
		{
			name:           "concurrent_create_relookup_fails",
			lookupError:    pgx.ErrNoRows,
			expectCreate:   true,
			createError:    &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectRelookup: true,
			relookupError:  assert.AnError,
			expectedError:  "failed to create product",
		},
		{
			name:          "lookup_error",
			lookupError:   assert.AnError,
			expectedError: "failed to look up product",
		},
		{
			name:          "create_error",
			lookupError:   pgx.ErrNoRows,
			expectCreate:  true,
			createError:   assert.AnError,
			expectedError: "failed to create product",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := product_repo.NewMockQuerier(ctrl)
			business := &business{productRepo: mockRepo}

			lookup := mockRepo.EXPECT().
				GetProductByIdentifiers(gomock.Any(), gomock.Any()).
				Return(tc.lookupReturn, tc.lookupError)
			if tc.expectCreate {
				mockRepo.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					Return(tc.createReturn, tc.createError).
					After(lookup)
			}
			if tc.expectRelookup {
				relookup := existing
				if tc.relookupError != nil {
					relookup = products.Product{}
				}
				mockRepo.EXPECT().
					GetProductByIdentifiers(gomock.Any(), gomock.Any()).
					Return(relookup, tc.relookupError)
			}

			result, err := business.FindOrCreateProduct(context.Background(), query)

			if tc.expectSuccess {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, tc.expectedID, result.ID)
			} else {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}

func TestFindOrCreateProduct_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := product_repo.NewMockQuerier(ctrl)
	business := &business{productRepo: mockRepo}

	query := model.ResolveQuery{
		Identifiers: model.Identifiers{GTIN: "00012345678905", SKU: "sku-9"},
		Attributes:  map[string]string{"color": "black"},
		Platform:    "target",
		URL:         "https://target.com/p/1",
	}

	var created products.CreateProductParams
	mockRepo.EXPECT().
		GetProductByIdentifiers(gomock.Any(), products.GetProductByIdentifiersParams{
			Gtin: pgtype.Text{String: "00012345678905", Valid: true},
			Sku:  pgtype.Text{String: "sku-9", Valid: true},
		}).
		Return(products.Product{}, pgx.ErrNoRows)
	mockRepo.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg products.CreateProductParams) (products.Product, error) {
			created = arg
			return products.Product{
				ID:         arg.ID,
				Gtin:       arg.Gtin,
				Sku:        arg.Sku,
				Brand:      arg.Brand,
				Title:      arg.Title,
				Currency:   arg.Currency,
				Platform:   arg.Platform,
				Url:        arg.Url,
				Attributes: arg.Attributes,
			}, nil
		})

	result, err := business.FindOrCreateProduct(context.Background(), query)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.UnknownBrand, created.Brand)
	assert.Equal(t, model.UnknownTitle, created.Title)
	assert.Equal(t, model.DefaultCurrency, created.Currency)
	assert.False(t, created.Variant.Valid)

	var attrs map[string]string
	require.NoError(t, json.Unmarshal(created.Attributes, &attrs))
	assert.Equal(t, "black", attrs["color"])

	assert.Equal(t, "00012345678905", result.Identifiers.GTIN)
	assert.Equal(t, "sku-9", result.Identifiers.SKU)
	assert.Equal(t, "black", result.Attributes["color"])
}
