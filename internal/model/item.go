package model

// Item is an inventory record: a uniquely named item and its quantity.
// The id is assigned by the database and never supplied by clients.
// Quantity is intentionally unconstrained and may be any integer,
// including negative values.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}
