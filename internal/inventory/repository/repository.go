package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrConstraintViolation = errors.New("constraint violation")
)

// InventoryRepository stores products keyed by id.
type InventoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	// FindByID returns ErrProductNotFound when no product has the id.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// Save updates the product with product.ID. A zero or unknown id
	// inserts a new product under a store-assigned id.
	Save(ctx context.Context, product domain.Product) (*domain.Product, error)
	// DeleteByID is a no-op for an unknown id.
	DeleteByID(ctx context.Context, id int64) error
}

// RecalledProductRepository is the recall registry.
type RecalledProductRepository interface {
	FindAll(ctx context.Context) ([]domain.RecalledProduct, error)
	Save(ctx context.Context, recall domain.RecalledProduct) (*domain.RecalledProduct, error)
}

// classifyError wraps integrity violations (SQLSTATE class 23) from either
// postgres driver, or gorm's translated form, with ErrConstraintViolation.
// Everything else is returned as is.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return fmt.Errorf("%s: %w: %s", op, ErrConstraintViolation, pqErr.Message)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%s: %w: %s", op, ErrConstraintViolation, pgErr.Message)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w: %v", op, ErrConstraintViolation, err)
	}
	return err
}
