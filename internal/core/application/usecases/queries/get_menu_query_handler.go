package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the menu catalog from the database. Results are
// sorted by item ID for stable output.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu catalog queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query for the full catalog.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			available
		FROM menu_items
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetMenuQueryResponse

		err = rows.Scan(
			&itemResp.ID,
			&itemResp.Name,
			&itemResp.Price,
			&itemResp.Available,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
