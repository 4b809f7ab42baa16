package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/shopsavvy/dealbot/core/logger"
	"log/slog"
)

// PostgresSource loads catalog buckets from the tables created by the
// migrations under migrations/. The data stays read-only reference
// data: it is fetched once at bootstrap, never mutated at runtime.
type PostgresSource struct {
	DB *sqlx.DB
}

type productRow struct {
	ID        int64  `db:"id"`
	BucketKey string `db:"bucket_key"`
	Name      string `db:"name"`
	Category  string `db:"category"`
	Glyph     string `db:"glyph"`
	ImageURL  string `db:"image_url"`
}

type offerRow struct {
	ProductID int64  `db:"product_id"`
	Platform  string `db:"platform"`
	Offer
}

// Load fetches products and offers and assembles ordered buckets.
func (s PostgresSource) Load(ctx context.Context) (*Catalog, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("catalog: nil database handle")
	}
	start := time.Now()

	var products []productRow
	if err := s.DB.SelectContext(ctx, &products,
		`SELECT id, bucket_key, name, category, glyph, image_url
		   FROM catalog_products
		  ORDER BY bucket_position, position`,
	); err != nil {
		return nil, fmt.Errorf("catalog: select products: %w", err)
	}

	var offers []offerRow
	if err := s.DB.SelectContext(ctx, &offers,
		`SELECT product_id, platform, original_price, discount_price,
		        discount_percent, coupon_code, cashback
		   FROM catalog_offers`,
	); err != nil {
		return nil, fmt.Errorf("catalog: select offers: %w", err)
	}

	byProduct := make(map[int64][]offerRow, len(products))
	for _, o := range offers {
		byProduct[o.ProductID] = append(byProduct[o.ProductID], o)
	}

	var c Catalog
	index := make(map[string]int)
	for _, row := range products {
		p := Product{
			Name:     row.Name,
			Category: row.Category,
			Glyph:    row.Glyph,
			ImageURL: row.ImageURL,
		}
		for _, o := range byProduct[row.ID] {
			platform, ok := ParsePlatform(o.Platform)
			if !ok || platform == PlatformAll {
				return nil, fmt.Errorf("catalog: unknown platform %q for product %q", o.Platform, row.Name)
			}
			offer := o.Offer
			switch platform {
			case PlatformFlipkart:
				p.Deals.Flipkart = &offer
			case PlatformAmazon:
				p.Deals.Amazon = &offer
			case PlatformMyntra:
				p.Deals.Myntra = &offer
			case PlatformMeesho:
				p.Deals.Meesho = &offer
			}
		}

		i, ok := index[row.BucketKey]
		if !ok {
			c.Buckets = append(c.Buckets, Bucket{Key: row.BucketKey})
			i = len(c.Buckets) - 1
			index[row.BucketKey] = i
		}
		c.Buckets[i].Products = append(c.Buckets[i].Products, p)
	}

	logger.SEED.Info("catalog loaded",
		slog.String("event", "catalog.load"),
		slog.String("status", "ok"),
		slog.Int("buckets", len(c.Buckets)),
		slog.Int("count", c.Size()),
		slog.Duration("duration", logger.Took(start)),
	)
	return &c, nil
}

// SeedPostgres fills empty catalog tables from the given catalog. An
// already-populated table is left untouched so seeding stays idempotent
// across restarts.
func SeedPostgres(ctx context.Context, db *sqlx.DB, c *Catalog) error {
	if db == nil {
		return fmt.Errorf("catalog: nil database handle")
	}

	var existing int
	if err := db.GetContext(ctx, &existing, `SELECT COUNT(*) FROM catalog_products`); err != nil {
		return fmt.Errorf("catalog: count products: %w", err)
	}
	if existing > 0 {
		logger.SEED.Debug("catalog seed skipped",
			slog.String("event", "catalog.seed"),
			slog.String("status", "skip"),
			slog.Int("count", existing),
		)
		return nil
	}

	start := time.Now()
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var seeded int
	for bi, bucket := range c.Buckets {
		for pi, p := range bucket.Products {
			var id int64
			if err := tx.QueryRowxContext(ctx,
				`INSERT INTO catalog_products
				        (bucket_key, bucket_position, position, name, category, glyph, image_url)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)
				 RETURNING id`,
				bucket.Key, bi, pi, p.Name, p.Category, p.Glyph, p.ImageURL,
			).Scan(&id); err != nil {
				return fmt.Errorf("catalog: insert product %q: %w", p.Name, err)
			}
			for _, po := range p.Deals.Available() {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO catalog_offers
					        (product_id, platform, original_price, discount_price,
					         discount_percent, coupon_code, cashback)
					 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
					id, string(po.Platform), po.Offer.OriginalPrice, po.Offer.DiscountPrice,
					po.Offer.DiscountPercent, po.Offer.CouponCode, po.Offer.Cashback,
				); err != nil {
					return fmt.Errorf("catalog: insert offer %q/%s: %w", p.Name, po.Platform, err)
				}
			}
			seeded++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit seed tx: %w", err)
	}
	logger.SEED.Info("catalog seeded",
		slog.String("event", "catalog.seed"),
		slog.String("status", "ok"),
		slog.Int("count", seeded),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}
