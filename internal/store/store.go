package store

import (
	"errors"
	"io"

	"github.com/fjod/go_cart/console-shop/internal/domain"
)

// Common errors returned by the ledger
var (
	ErrLedgerFull = errors.New("maximum number of orders reached")
	ErrAuditLog   = errors.New("failed to write order audit log")
)

const (
	// DefaultCapacity is how many orders a ledger retains
	DefaultCapacity = 100

	// DefaultFirstOrderID is the first id handed out by a fresh ledger
	DefaultFirstOrderID = 1
)

// OrderLedger defines the order retention operations used by checkout and the menu
type OrderLedger interface {
	// NextOrderID returns the current counter value and advances it
	NextOrderID() int

	// Save assigns an id, stores the order and appends an audit line
	// Returns ErrLedgerFull without consuming an id when at capacity
	Save(order domain.Order) (domain.Order, error)

	// Full reports whether Save would be rejected
	Full() bool

	// Orders returns stored orders in insertion order
	Orders() []domain.Order

	// ListAll renders every stored order
	ListAll(w io.Writer) error
}

// AuditLog is the write-only sink for one-line order records
type AuditLog interface {
	Append(line string) error
}
