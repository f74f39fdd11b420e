package store

import (
	"fmt"
	"io"

	"github.com/fjod/go_cart/console-shop/internal/domain"
	"go.uber.org/zap"
)

var _ OrderLedger = (*MemoryLedger)(nil)

// MemoryLedger implements OrderLedger with in-memory storage.
// It is not safe for concurrent use; the shop runs on a single goroutine.
type MemoryLedger struct {
	nextID   int
	capacity int
	orders   []domain.Order
	audit    AuditLog
	log      *zap.Logger
}

// NewMemoryLedger creates a ledger whose first order id is firstID
func NewMemoryLedger(audit AuditLog, capacity, firstID int, log *zap.Logger) *MemoryLedger {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if firstID < 1 {
		firstID = DefaultFirstOrderID
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &MemoryLedger{
		nextID:   firstID,
		capacity: capacity,
		orders:   make([]domain.Order, 0, capacity),
		audit:    audit,
		log:      log,
	}
}

// NextOrderID returns the current counter value and advances it
func (l *MemoryLedger) NextOrderID() int {
	id := l.nextID
	l.nextID++
	return id
}

// Full reports whether the ledger holds capacity orders
func (l *MemoryLedger) Full() bool {
	return len(l.orders) >= l.capacity
}

func (l *MemoryLedger) Len() int {
	return len(l.orders)
}

// Save stores the order under a fresh id and appends its audit line.
// A full ledger rejects the order before an id is consumed or anything is logged.
// An audit failure keeps the order stored and is returned wrapped in ErrAuditLog.
func (l *MemoryLedger) Save(order domain.Order) (domain.Order, error) {
	if l.Full() {
		l.log.Warn("order rejected, ledger full",
			zap.Int("capacity", l.capacity),
			zap.String("checkout_id", order.CheckoutID.String()))
		return domain.Order{}, ErrLedgerFull
	}

	order.ID = l.NextOrderID()
	l.orders = append(l.orders, order)

	l.log.Info("order saved",
		zap.Int("order_id", order.ID),
		zap.String("checkout_id", order.CheckoutID.String()),
		zap.String("payment_method", order.PaymentMethod),
		zap.Int("total_amount", order.TotalAmount),
		zap.Int("item_count", order.ItemCount()))

	if l.audit == nil {
		return order, nil
	}
	if err := l.audit.Append(AuditLine(order)); err != nil {
		l.log.Error("audit log append failed", zap.Int("order_id", order.ID), zap.Error(err))
		return order, fmt.Errorf("%w: %w", ErrAuditLog, err)
	}

	return order, nil
}

// Orders returns a copy of the stored orders in insertion order
func (l *MemoryLedger) Orders() []domain.Order {
	out := make([]domain.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// ListAll renders every stored order, or a single notice when there are none
func (l *MemoryLedger) ListAll(w io.Writer) error {
	return RenderOrders(w, l.orders)
}
