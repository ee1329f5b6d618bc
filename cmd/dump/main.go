// Command dump prints every item in an inventory database file, for quick
// inspection without a running server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sandy2008/inventory/internal/db"
	"github.com/sandy2008/inventory/internal/store"
)

func main() {
	dbPath := flag.String("db", "inventory.db", "path to SQLite database file")
	flag.Parse()

	if _, err := os.Stat(*dbPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: database file %s does not exist\n", *dbPath)
		os.Exit(1)
	}

	database, err := db.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	items, err := store.ListItems(context.Background(), database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, item := range items {
		fmt.Printf("%d\t%s\t%d\n", item.ID, item.Name, item.Quantity)
	}
}
