package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sandy2008/inventory/internal/errs"
	"github.com/sandy2008/inventory/internal/model"
)

// DBTX is the subset of database/sql methods the store needs. Both *sql.DB
// and a session-scoped *sql.Conn satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateItem inserts a new item and returns it with its assigned id.
// A UNIQUE violation on the name column maps to errs.ErrConflict.
func CreateItem(ctx context.Context, db DBTX, name string, quantity int64) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (name, quantity) VALUES (?, ?)`,
		name, quantity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return &model.Item{ID: id, Name: name, Quantity: quantity}, nil
}

// GetItemByName returns an item by name, or nil if no item matches.
func GetItemByName(ctx context.Context, db DBTX, name string) (*model.Item, error) {
	item := &model.Item{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, quantity FROM items WHERE name = ?`, name,
	).Scan(&item.ID, &item.Name, &item.Quantity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all items in insertion (id) order.
func ListItems(ctx context.Context, db DBTX) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, quantity FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItemQuantity replaces an item's quantity wholesale.
func UpdateItemQuantity(ctx context.Context, db DBTX, name string, quantity int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET quantity = ? WHERE name = ?`,
		quantity, name,
	)
	if err != nil {
		return fmt.Errorf("updating item quantity: %w", err)
	}
	return nil
}

// DeleteItem removes an item by name.
func DeleteItem(ctx context.Context, db DBTX, name string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM items WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is the driver's UNIQUE constraint
// error. modernc.org/sqlite exposes no typed constraint error, so this
// matches the stable message text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
