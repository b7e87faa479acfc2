package domain

// Product is one entry in the static catalog. Price carries the
// display-formatted string shown in the storefront, e.g. "€12.99"; the
// catalog validates it at load time.
type Product struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
}
