package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"pickup.app/resolver/store"
	"pickup.app/resolver/store/offers"
	"pickup.app/resolver/store/products"
	"pickup.app/resolver/store/stores"
)

const (
	flagDSN  = "dsn"
	flagFile = "file"
)

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a product with its stores and offers from a YAML fixture.",
		Args:  cobra.ExactArgs(0),
		Example: `  # Seed the local resolver database.
  pickupctl seed --dsn postgres://localhost:5432/resolver --file fixtures/headphones.yaml
`,
		RunE: runSeed,
	}

	cmd.Flags().String(flagDSN, os.Getenv("PICKUP_DSN"), "postgres connection string, defaults to $PICKUP_DSN")
	cmd.Flags().String(flagFile, "", "path to the YAML fixture")
	_ = cmd.MarkFlagRequired(flagFile)

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	dsn, err := cmd.Flags().GetString(flagDSN)
	if err != nil {
		return fmt.Errorf("getting dsn flag failed: %w", err)
	}
	if dsn == "" {
		return fmt.Errorf("--%s or PICKUP_DSN is required", flagDSN)
	}
	path, err := cmd.Flags().GetString(flagFile)
	if err != nil {
		return fmt.Errorf("getting file flag failed: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	fixture, err := LoadFixture(f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	repo := store.NewStore(pool)
	s := &seeder{products: repo.Products, stores: repo.Stores, offers: repo.Offers, now: time.Now}
	return s.seed(ctx, fixture, cmd.OutOrStdout())
}

type seeder struct {
	products products.Querier
	stores   stores.Querier
	offers   offers.Querier
	now      func() time.Time
}

func (s *seeder) seed(ctx context.Context, f *Fixture, out io.Writer) error {
	productID, err := s.product(ctx, f.Product)
	if err != nil {
		return err
	}

	for _, st := range f.Stores {
		if _, err := s.stores.UpsertStore(ctx, st.params()); err != nil {
			return fmt.Errorf("upsert store %s: %w", st.ID, err)
		}
	}

	now := s.now().UTC()
	for _, o := range f.Offers {
		if _, err := s.offers.UpsertOffer(ctx, o.params(productID, now)); err != nil {
			return fmt.Errorf("upsert offer %s: %w", o.ID, err)
		}
	}

	_, err = fmt.Fprintf(out, "seeded product %s: %d stores, %d offers\n", productID, len(f.Stores), len(f.Offers))
	return err
}

// product returns the id of the matching product, creating it when none matches.
func (s *seeder) product(ctx context.Context, p FixtureProduct) (string, error) {
	existing, err := s.products.GetProductByIdentifiers(ctx, p.lookupParams())
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("look up product: %w", err)
	}

	created, err := s.products.CreateProduct(ctx, p.createParams())
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	return created.ID, nil
}
