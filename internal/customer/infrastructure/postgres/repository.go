package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commercekit/orderflow/internal/customer/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT c.id, c.name, c.email, c.cpf, c.birth_date,
		       a.street, a.number, a.neighborhood, a.city, a.state, a.country, a.cep
		FROM customers c
		JOIN addresses a ON a.customer_id = c.id
		WHERE c.id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.CPF, &c.BirthDate,
			&c.Address.Street, &c.Address.Number, &c.Address.Neighborhood,
			&c.Address.City, &c.Address.State, &c.Address.Country, &c.Address.CEP)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
