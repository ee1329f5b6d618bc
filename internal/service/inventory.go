// Package service implements the inventory operations and enforces the
// business rules over item records: name uniqueness on create and existence
// on update, delete, and get.
//
// Every operation acquires one session-scoped connection from the pool on
// entry and releases it on every exit path, success or failure. Mutations on
// the same item name serialize on a per-name mutex so that the check-then-act
// sequences cannot interleave; the UNIQUE constraint on items.name is the
// storage-level backstop.
package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/sandy2008/inventory/internal/errs"
	"github.com/sandy2008/inventory/internal/model"
	"github.com/sandy2008/inventory/internal/store"
)

// Service owns the business rules for item records.
type Service struct {
	db *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Service backed by the given database handle.
func New(db *sql.DB) *Service {
	return &Service{
		db:    db,
		locks: make(map[string]*sync.Mutex),
	}
}

// session acquires one connection from the pool for a single operation.
// The caller must close it on every exit path.
func (s *Service) session(ctx context.Context) (*sql.Conn, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring session: %w", err)
	}
	return conn, nil
}

// nameLock returns the mutex serializing mutations of a single item name.
func (s *Service) nameLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// AddItem creates a new item and returns it with its assigned id.
// Returns errs.ErrConflict if an item with the same name already exists.
func (s *Service) AddItem(ctx context.Context, name string, quantity int64) (*model.Item, error) {
	lock := s.nameLock(name)
	lock.Lock()
	defer lock.Unlock()

	conn, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	existing, err := store.GetItemByName(ctx, conn, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrConflict
	}

	return store.CreateItem(ctx, conn, name, quantity)
}

// RemoveItem deletes an item by name.
// Returns errs.ErrNotFound if no item with the name exists.
func (s *Service) RemoveItem(ctx context.Context, name string) error {
	lock := s.nameLock(name)
	lock.Lock()
	defer lock.Unlock()

	conn, err := s.session(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	existing, err := store.GetItemByName(ctx, conn, name)
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.ErrNotFound
	}

	return store.DeleteItem(ctx, conn, name)
}

// UpdateQuantity replaces an item's quantity wholesale and returns the
// updated item. Returns errs.ErrNotFound if no item with the name exists.
func (s *Service) UpdateQuantity(ctx context.Context, name string, quantity int64) (*model.Item, error) {
	lock := s.nameLock(name)
	lock.Lock()
	defer lock.Unlock()

	conn, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	existing, err := store.GetItemByName(ctx, conn, name)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errs.ErrNotFound
	}

	if err := store.UpdateItemQuantity(ctx, conn, name, quantity); err != nil {
		return nil, err
	}

	return store.GetItemByName(ctx, conn, name)
}

// GetItem returns an item by name.
// Returns errs.ErrNotFound if no item with the name exists.
func (s *Service) GetItem(ctx context.Context, name string) (*model.Item, error) {
	conn, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	item, err := store.GetItemByName(ctx, conn, name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errs.ErrNotFound
	}
	return item, nil
}

// ListItems returns all items in insertion order. Never fails on an empty
// table; the result is simply empty.
func (s *Service) ListItems(ctx context.Context) ([]model.Item, error) {
	conn, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return store.ListItems(ctx, conn)
}
