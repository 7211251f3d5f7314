package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pickup.app/resolver/model"
	"pickup.app/resolver/store/convert"
	"pickup.app/resolver/store/products"
)

// FindOrCreateProduct returns the product matching any identifier of q, creating it on first sight.
func (b *business) FindOrCreateProduct(ctx context.Context, q model.ResolveQuery) (*model.Product, error) {
	lookup := convert.ProductLookup(q.Identifiers)

	dbProduct, err := b.productRepo.GetProductByIdentifiers(ctx, lookup)
	if err == nil {
		return convertDBProductToModel(dbProduct), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		rlog.Error("product lookup failed", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up product"}
	}

	attributes, err := json.Marshal(nonNilAttributes(q.Attributes))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to encode product attributes"}
	}

	dbProduct, err = b.productRepo.CreateProduct(ctx, convert.NewProduct(uuid.NewString(), q, attributes))
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			// a concurrent resolve created it first
			if existing, lookupErr := b.productRepo.GetProductByIdentifiers(ctx, lookup); lookupErr == nil {
				return convertDBProductToModel(existing), nil
			}
		}
		rlog.Error("product create failed", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create product"}
	}

	rlog.Info("product created", "product_id", dbProduct.ID, "platform", q.Platform)
	return convertDBProductToModel(dbProduct), nil
}

// convertDBProductToModel converts a database Product to a domain model Product
func convertDBProductToModel(dbProduct products.Product) *model.Product {
	product := &model.Product{
		ID: dbProduct.ID,
		Identifiers: model.Identifiers{
			GTIN: dbProduct.Gtin.String,
			UPC:  dbProduct.Upc.String,
			EAN:  dbProduct.Ean.String,
			ASIN: dbProduct.Asin.String,
			SKU:  dbProduct.Sku.String,
		},
		Brand:     dbProduct.Brand,
		Title:     dbProduct.Title,
		Variant:   convert.StringOrNil(dbProduct.Variant),
		Price:     convert.StringOrNil(dbProduct.Price),
		Currency:  dbProduct.Currency,
		Platform:  dbProduct.Platform,
		URL:       dbProduct.Url,
		CreatedAt: dbProduct.CreatedAt.Time,
		UpdatedAt: dbProduct.UpdatedAt.Time,
	}

	if len(dbProduct.Attributes) > 0 {
		if err := json.Unmarshal(dbProduct.Attributes, &product.Attributes); err != nil {
			rlog.Warn("product attributes not decodable", "product_id", dbProduct.ID, "error", err)
		}
	}

	return product
}

func nonNilAttributes(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
