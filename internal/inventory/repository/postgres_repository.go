package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
	"github.com/ridloal/inventory-service/internal/platform/logger"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type postgresInventoryRepository struct {
	db DBTX
}

func NewPostgresInventoryRepository(db DBTX) InventoryRepository {
	return &postgresInventoryRepository{db: db}
}

func (r *postgresInventoryRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, price, quantity FROM products ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("FindAll products: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
			logger.Error("FindAll products: scan failed", err)
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("FindAll products: rows iteration error", err)
		return nil, err
	}
	return products, nil
}

func (r *postgresInventoryRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT id, name, price, quantity FROM products WHERE id = $1`
	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("FindByID product: query failed", err)
		return nil, err
	}
	return &p, nil
}

// Save updates the row with product.ID when there is one. A zero or
// unknown id inserts a new row and the sequence assigns its id.
func (r *postgresInventoryRepository) Save(ctx context.Context, product domain.Product) (*domain.Product, error) {
	var saved domain.Product
	if product.ID != 0 {
		query := `UPDATE products SET name = $2, price = $3, quantity = $4 WHERE id = $1
                  RETURNING id, name, price, quantity`
		err := r.db.QueryRowContext(ctx, query, product.ID, product.Name, product.Price, product.Quantity).
			Scan(&saved.ID, &saved.Name, &saved.Price, &saved.Quantity)
		if err == nil {
			return &saved, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Error("Save product: update failed", err)
			return nil, classifyError("save product", err)
		}
	}

	query := `INSERT INTO products (name, price, quantity) VALUES ($1, $2, $3)
              RETURNING id, name, price, quantity`
	err := r.db.QueryRowContext(ctx, query, product.Name, product.Price, product.Quantity).
		Scan(&saved.ID, &saved.Name, &saved.Price, &saved.Quantity)
	if err != nil {
		logger.Error("Save product: insert failed", err)
		return nil, classifyError("save product", err)
	}
	return &saved, nil
}

func (r *postgresInventoryRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		logger.Error("DeleteByID product: exec failed", err)
		return classifyError("delete product", err)
	}
	return nil
}

type postgresRecalledProductRepository struct {
	db DBTX
}

func NewPostgresRecalledProductRepository(db DBTX) RecalledProductRepository {
	return &postgresRecalledProductRepository{db: db}
}

func (r *postgresRecalledProductRepository) FindAll(ctx context.Context) ([]domain.RecalledProduct, error) {
	query := `SELECT id, name, expired FROM recalled_products ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("FindAll recalled products: query failed", err)
		return nil, err
	}
	defer rows.Close()

	recalls := []domain.RecalledProduct{}
	for rows.Next() {
		var rp domain.RecalledProduct
		if err := rows.Scan(&rp.ID, &rp.Name, &rp.Expired); err != nil {
			logger.Error("FindAll recalled products: scan failed", err)
			return nil, err
		}
		recalls = append(recalls, rp)
	}
	return recalls, rows.Err()
}

func (r *postgresRecalledProductRepository) Save(ctx context.Context, recall domain.RecalledProduct) (*domain.RecalledProduct, error) {
	var saved domain.RecalledProduct
	if recall.ID != 0 {
		query := `UPDATE recalled_products SET name = $2, expired = $3 WHERE id = $1 RETURNING id, name, expired`
		err := r.db.QueryRowContext(ctx, query, recall.ID, recall.Name, recall.Expired).
			Scan(&saved.ID, &saved.Name, &saved.Expired)
		if err == nil {
			return &saved, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Error("Save recalled product: update failed", err)
			return nil, classifyError("save recalled product", err)
		}
	}

	query := `INSERT INTO recalled_products (name, expired) VALUES ($1, $2) RETURNING id, name, expired`
	err := r.db.QueryRowContext(ctx, query, recall.Name, recall.Expired).
		Scan(&saved.ID, &saved.Name, &saved.Expired)
	if err != nil {
		logger.Error("Save recalled product: insert failed", err)
		return nil, classifyError("save recalled product", err)
	}
	return &saved, nil
}
