package catalog

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"github.com/jackc/pgx/v5"

	"pickup.app/resolver/model"
	"pickup.app/resolver/store/convert"
)

// GetStore returns the store or an errs.NotFound error.
func (b *business) GetStore(ctx context.Context, id string) (*model.Store, error) {
	dbStore, err := b.storeRepo.GetStore(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "store not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get store"}
	}
	return convert.Store(dbStore), nil
}
