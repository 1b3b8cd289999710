// Package ledger holds the in-memory transaction collection for an active
// session. The cache is an explicitly owned value constructed by its caller;
// there is no process-wide singleton. It is only as fresh as the last
// explicit fetch or local mutation.
package ledger

import (
	"time"

	"ledgerbook/internal/models"
	"ledgerbook/internal/reports"
)

// Cache is an ordered collection of one user's transactions, synchronized by
// full re-fetch or local patch after each mutation. It assumes a single
// sequential owner and performs no locking.
type Cache struct {
	items []models.Transaction
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// ReplaceAll replaces the whole collection with a fetched result set.
// Last fetch wins; no merging.
func (c *Cache) ReplaceAll(txs []models.Transaction) {
	c.items = make([]models.Transaction, len(txs))
	copy(c.items, txs)
}

// Append adds a newly created transaction to the end of the collection.
func (c *Cache) Append(tx models.Transaction) {
	c.items = append(c.items, tx)
}

// Update replaces the transaction with the same ID in place, keeping order.
// Returns false if no transaction matched.
func (c *Cache) Update(tx models.Transaction) bool {
	for i := range c.items {
		if c.items[i].ID == tx.ID {
			c.items[i] = tx
			return true
		}
	}
	return false
}

// Remove deletes the transaction with the given ID.
// Returns false if no transaction matched.
func (c *Cache) Remove(id string) bool {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the collection in its current order.
func (c *Cache) Items() []models.Transaction {
	out := make([]models.Transaction, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of cached transactions.
func (c *Cache) Len() int {
	return len(c.items)
}

// Summarize derives report views for the inclusive date range from the cached
// collection, without a storage round-trip.
func (c *Cache) Summarize(from, to time.Time) reports.Summary {
	return reports.Summarize(c.items, from, to)
}
