package domain

// CartItem is one line in a shopping cart. Name doubles as the product
// identity: a cart holds at most one line per product name. Price is copied
// from the product when the line is created and never re-fetched.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}
