package domain

// PaymentCashOnDelivery is the only payment method the storefront offers.
const PaymentCashOnDelivery = "Cash on Delivery"

// CustomerInfo is the checkout contact/address form. It is validated at the
// request-binding boundary; services receive it already well-formed.
type CustomerInfo struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Notes      string `json:"notes,omitempty"`
}

// Totals is derived from the cart on every read and never cached.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Order is assembled at submission time and exists only for the duration of
// the submission; it is never persisted.
type Order struct {
	Customer      CustomerInfo `json:"customer"`
	Items         []CartItem   `json:"items"`
	Totals        Totals       `json:"totals"`
	PaymentMethod string       `json:"paymentMethod"`
	OrderDate     string       `json:"orderDate"`
}
