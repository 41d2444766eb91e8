package domain

// CartItem is a template staged for purchase.
type CartItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Price         int    `json:"price"`
	Category      string `json:"category"`
	OriginalPrice int    `json:"original_price,omitempty"`
}

// Cart holds the items staged by one user. Order of insertion is preserved.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Total returns the sum of item prices.
func (c Cart) Total() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

// Count returns the number of items in the cart.
func (c Cart) Count() int {
	return len(c.Items)
}

// Contains reports whether an item with the given ID is already staged.
func (c Cart) Contains(itemID string) bool {
	for _, item := range c.Items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}
