package domain

// Bounds on a single line. With at most MaxQuantity units at MaxPrice each, a
// full cart's total stays well inside int64.
const (
	MaxQuantity = 10000
	MaxPrice    = 1_000_000_000
)

// CartItem is a cart line. Name and Price are copied from the product when the
// line is added and do not follow later catalog changes.
type CartItem struct {
	ProductID int64
	Name      string
	Price     int
	Quantity  int
}

func NewCartItem(p Product, quantity int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
	}
}

// Subtotal returns price * quantity for the line.
func (i CartItem) Subtotal() int {
	return i.Price * i.Quantity
}

// SumItems returns the total of price * quantity over items.
func SumItems(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
