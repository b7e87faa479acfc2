package i18n

// Default returns the built-in en/pt storefront strings.
func Default() *Bundle {
	return New(map[string]map[string]string{
		"searchPlaceholder": {
			English:    "Search for products, categories, or brands...",
			Portuguese: "Pesquisar produtos, categorias ou marcas...",
		},
		"login":  {English: "Login", Portuguese: "Entrar"},
		"signup": {English: "Sign Up", Portuguese: "Cadastrar"},
		"home":   {English: "Home", Portuguese: "Início"},
		"rice":   {English: "Rice", Portuguese: "Arroz"},
		"bakery": {English: "Bakery", Portuguese: "Padaria"},
		"spices": {English: "Spices", Portuguese: "Especiarias"},
		"vegetables": {
			English:    "Vegetables",
			Portuguese: "Vegetais",
		},
		"fruits":  {English: "Fruits", Portuguese: "Frutas"},
		"dairy":   {English: "Dairy", Portuguese: "Laticínios"},
		"drinks":  {English: "Drinks", Portuguese: "Bebidas"},
		"pulses":  {English: "Pulses", Portuguese: "Leguminosas"},
		"frozen":  {English: "Frozen", Portuguese: "Congelados"},
		"deals":   {English: "Deals", Portuguese: "Ofertas"},
		"contact": {English: "Contact", Portuguese: "Contato"},
		"welcomeTitle": {
			English:    "Welcome to Sher-e-Punjab",
			Portuguese: "Bem-vindo ao Sher-e-Punjab",
		},
		"welcomeSubtitle": {
			English:    "Your destination for authentic Indian groceries, spices, and fresh produce",
			Portuguese: "Seu destino para mantimentos indianos autênticos, especiarias e produtos frescos",
		},
		"shopNow":   {English: "Shop Now", Portuguese: "Comprar Agora"},
		"viewDeals": {English: "View Deals", Portuguese: "Ver Ofertas"},
		"addToCart": {English: "Add to Cart", Portuguese: "Adicionar ao Carrinho"},
		"cart":      {English: "Cart", Portuguese: "Carrinho"},
		"checkout":  {English: "Checkout", Portuguese: "Finalizar Compra"},
		"subtotal":  {English: "Subtotal", Portuguese: "Subtotal"},
		"tax":       {English: "Tax", Portuguese: "Imposto"},
		"shipping":  {English: "Shipping", Portuguese: "Entrega"},
		"total":     {English: "Total", Portuguese: "Total"},
		"freeShipping": {
			English:    "Free shipping on orders over €50",
			Portuguese: "Entrega grátis em pedidos acima de €50",
		},
		"emptyCart": {
			English:    "Your cart is empty",
			Portuguese: "Seu carrinho está vazio",
		},
		"placeOrder": {
			English:    "Place Order",
			Portuguese: "Fazer Pedido",
		},
	}, English, Portuguese)
}
