package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order straight from the database,
// bypassing the write model. The status integer stored in the row is rendered
// as its wire string.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(42)
//
//	orderView, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %d is %s\n", orderView.ID, orderView.Status)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns errs.ErrObjectNotFound (wrapped) when no order carries the
// requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var orderResp GetOrderQueryResponse
	var rawItems []byte
	var rawStatus int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			items,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&orderResp.ID,
		&rawItems,
		&rawStatus,
		&orderResp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order ID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = json.Unmarshal(rawItems, &orderResp.Items); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderResp.Status = order.Status(rawStatus).String()

	return orderResp, nil
}
