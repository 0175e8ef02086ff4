package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	orderDomain "github.com/commercekit/orderflow/internal/order/domain"
	"github.com/commercekit/orderflow/internal/product/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, image, description, weight_kg, price_cents, stock_qty
		FROM products
		WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Description, &p.WeightKg, &p.PriceCents, &p.StockQty); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// UpdateStock applies one guarded decrement per status. The guard keeps a
// row from going negative when two placements race on the same product.
func (r *Repository) UpdateStock(ctx context.Context, statuses []orderDomain.ProductStatus) error {
	batch := &pgx.Batch{}
	for _, st := range statuses {
		batch.Queue(`
			UPDATE products
			SET stock_qty = stock_qty - $1
			WHERE id = $2 AND stock_qty >= $1`,
			st.Quantity, st.ProductID)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}
