package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fjod/go_cart/console-shop/internal/domain"
	"github.com/fjod/go_cart/console-shop/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLedger implements OrderSaver for testing
type mockLedger struct {
	saved []domain.Order
	full  bool
	err   error
	calls int
}

func (m *mockLedger) Save(order domain.Order) (domain.Order, error) {
	m.calls++
	if m.err != nil && !errors.Is(m.err, store.ErrAuditLog) {
		return domain.Order{}, m.err
	}
	order.ID = len(m.saved) + 1
	m.saved = append(m.saved, order)
	return order, m.err
}

func (m *mockLedger) Full() bool {
	return m.full
}

type mockAudit struct {
	lines []string
}

func (m *mockAudit) Append(line string) error {
	m.lines = append(m.lines, line)
	return nil
}

func TestCheckout_Scenario_CardTotal1250(t *testing.T) {
	cart := setupCart(t, DefaultCartCapacity)
	audit := &mockAudit{}
	ledger := store.NewMemoryLedger(audit, store.DefaultCapacity, store.DefaultFirstOrderID, nil)
	svc := NewCheckoutService(cart, ledger, nil)

	_, err := cart.Add(1, 1)
	require.NoError(t, err)
	_, err = cart.Add(2, 2)
	require.NoError(t, err)
	require.Equal(t, 1250, cart.Total())

	result, err := svc.Checkout(domain.PaymentCard)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Order.ID)
	assert.Equal(t, 1250, result.Order.TotalAmount)
	assert.Equal(t, "Credit / Debit Card", result.Order.PaymentMethod)
	assert.Equal(t, 2, result.Order.ItemCount())
	assert.Equal(t, "Paid 1250 using Credit / Debit Card.", result.Receipt.Message)

	assert.True(t, cart.IsEmpty())
	require.Len(t, audit.lines, 1)
	assert.Equal(t, "[LOG] -> Order ID: 1 has been successfully checked out and paid using Credit / Debit Card.", audit.lines[0])
}

func TestCheckout_EmptyCart(t *testing.T) {
	cart := setupCart(t, DefaultCartCapacity)
	ledger := &mockLedger{}
	svc := NewCheckoutService(cart, ledger, nil)

	result, err := svc.Checkout(domain.PaymentCash)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, result)
	assert.Equal(t, 0, ledger.calls)
}

func TestCheckout_LedgerFull_KeepsCart(t *testing.T) {
	cart := setupCart(t, DefaultCartCapacity)
	ledger := &mockLedger{full: true}
	svc := NewCheckoutService(cart, ledger, nil)

	_, err := cart.Add(3, 2)
	require.NoError(t, err)

	result, err := svc.Checkout(domain.PaymentGCash)
	assert.ErrorIs(t, err, store.ErrLedgerFull)
	assert.Nil(t, result)
	assert.Equal(t, 0, ledger.calls)
	assert.Equal(t, 1, cart.Len())
}

func TestCheckout_UnknownMethod(t *testing.T) {
	cart := setupCart(t, DefaultCartCapacity)
	ledger := &mockLedger{}
	svc := NewCheckoutService(cart, ledger, nil)

	_, err := cart.Add(1, 1)
	require.NoError(t, err)

	_, err = svc.Checkout(domain.PaymentMethod(9))
	assert.ErrorIs(t, err, domain.ErrUnknownPaymentMethod)
	assert.Equal(t, 0, ledger.calls)
	assert.Equal(t, 1, cart.Len())
}

func TestCheckout_AuditFailureStillCompletes(t *testing.T) {
	cart := setupCart(t, DefaultCartCapacity)
	ledger := &mockLedger{err: fmt.Errorf("%w: disk full", store.ErrAuditLog)}
	svc := NewCheckoutService(cart, ledger, nil)

	_, err := cart.Add(4, 1)
	require.NoError(t, err)

	result, err := svc.Checkout(domain.PaymentCash)
	assert.ErrorIs(t, err, store.ErrAuditLog)
	require.NotNil(t, result)
	assert.Equal(t, 300, result.Order.TotalAmount)
	assert.True(t, cart.IsEmpty())
}

func TestCheckout_SaveError(t *testing.T) {
	cart := setupCart(t, DefaultCartCapacity)
	ledger := &mockLedger{err: errors.New("boom")}
	svc := NewCheckoutService(cart, ledger, nil)

	_, err := cart.Add(4, 1)
	require.NoError(t, err)

	result, err := svc.Checkout(domain.PaymentCash)
	assert.ErrorContains(t, err, "failed to save order")
	assert.Nil(t, result)
	assert.Equal(t, 1, cart.Len())
}

func TestCheckout_IdsStrictlyIncrease(t *testing.T) {
	cart := setupCart(t, DefaultCartCapacity)
	audit := &mockAudit{}
	ledger := store.NewMemoryLedger(audit, store.DefaultCapacity, store.DefaultFirstOrderID, nil)
	svc := NewCheckoutService(cart, ledger, nil)

	last := 0
	for i := 0; i < 5; i++ {
		_, err := cart.Add(int64(i%4+1), i+1)
		require.NoError(t, err)
		total := cart.Total()

		result, err := svc.Checkout(domain.PaymentCash)
		require.NoError(t, err)
		assert.Equal(t, last+1, result.Order.ID)
		assert.Equal(t, total, result.Order.TotalAmount)
		last = result.Order.ID
	}
	assert.Len(t, audit.lines, 5)
}
