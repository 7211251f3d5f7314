package catalog

import (
	"context"

	"encore.dev/beta/errs"

	"pickup.app/resolver/model"
	"pickup.app/resolver/store/convert"
)

// ListOffers returns every stored offer of a product, eligible or not.
func (b *business) ListOffers(ctx context.Context, productID string) ([]model.Offer, error) {
	dbOffers, err := b.offerRepo.ListOffersByProduct(ctx, productID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list offers"}
	}

	result := make([]model.Offer, len(dbOffers))
	for i, dbOffer := range dbOffers {
		result[i] = *convert.Offer(dbOffer)
	}
	return result, nil
}
