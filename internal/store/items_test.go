package store

import (
	"context"
	"errors"
	"testing"

	"github.com/sandy2008/inventory/internal/db"
	"github.com/sandy2008/inventory/internal/errs"
)

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := CreateItem(ctx, database, "widget", 5)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ID == 0 {
		t.Error("expected assigned id, got 0")
	}

	got, err := GetItemByName(ctx, database, "widget")
	if err != nil {
		t.Fatalf("GetItemByName: %v", err)
	}
	if got == nil {
		t.Fatal("expected item, got nil")
	}
	if got.Name != "widget" || got.Quantity != 5 {
		t.Errorf("expected widget/5, got %s/%d", got.Name, got.Quantity)
	}
}

func TestGetMissingItem(t *testing.T) {
	database := db.NewTestDB(t)

	got, err := GetItemByName(context.Background(), database, "ghost")
	if err != nil {
		t.Fatalf("GetItemByName: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing item, got %+v", got)
	}
}

func TestCreateDuplicateName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateItem(ctx, database, "widget", 5); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	_, err := CreateItem(ctx, database, "widget", 9)
	if !errors.Is(err, errs.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate name, got %v", err)
	}
}

func TestListItemsInsertionOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateItem(ctx, database, "hammer", 3)
	CreateItem(ctx, database, "anvil", 1)
	CreateItem(ctx, database, "chisel", 7)

	items, err := ListItems(ctx, database)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	want := []string{"hammer", "anvil", "chisel"}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("item %d: expected %q, got %q", i, name, items[i].Name)
		}
	}
}

func TestUpdateItemQuantity(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateItem(ctx, database, "widget", 5)
	if err := UpdateItemQuantity(ctx, database, "widget", 9); err != nil {
		t.Fatalf("UpdateItemQuantity: %v", err)
	}

	got, _ := GetItemByName(ctx, database, "widget")
	if got.Quantity != 9 {
		t.Errorf("expected quantity 9, got %d", got.Quantity)
	}
}

func TestDeleteItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateItem(ctx, database, "widget", 5)
	if err := DeleteItem(ctx, database, "widget"); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	got, _ := GetItemByName(ctx, database, "widget")
	if got != nil {
		t.Errorf("expected item to be gone, got %+v", got)
	}
}
