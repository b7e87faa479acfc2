// Package mailer renders the order confirmation and store-owner notification
// emails. Delivery is out of scope: the texts are logged, and the endpoint's
// contract ends at accepting the order.
package mailer

import (
	"fmt"
	"log"
	"strings"
	"text/template"
	"time"

	"grocery-storefront/internal/domain"
	"grocery-storefront/internal/pricing"
)

type Service struct {
	logger     *log.Logger
	storeName  string
	ownerEmail string
}

func New(logger *log.Logger, storeName, ownerEmail string) *Service {
	return &Service{logger: logger, storeName: storeName, ownerEmail: ownerEmail}
}

var customerTmpl = template.Must(template.New("customer").Parse(`Dear {{.Customer.FullName}},

Thank you for your order at {{.StoreName}}!

Your order has been confirmed and will be delivered in 5-7 business days.

ORDER DETAILS:
{{.ItemsList}}

DELIVERY ADDRESS:
{{.Customer.Address}}
{{.Customer.City}}, {{.Customer.PostalCode}}
{{.Customer.Country}}

ORDER SUMMARY:
Subtotal: {{.Subtotal}}
Tax (8%): {{.Tax}}
Shipping: {{.Shipping}}
Total: {{.Total}}

PAYMENT METHOD: {{.PaymentMethod}}

{{if .Customer.Notes}}SPECIAL INSTRUCTIONS:
{{.Customer.Notes}}

{{end}}We will contact you at {{.Customer.Phone}} if we need any clarification.

Thank you for shopping with us!

Best regards,
{{.StoreName}} Team`))

var ownerTmpl = template.Must(template.New("owner").Parse(`NEW ORDER RECEIVED!

Customer: {{.Customer.FullName}}
Email: {{.Customer.Email}}
Phone: {{.Customer.Phone}}

DELIVERY ADDRESS:
{{.Customer.Address}}
{{.Customer.City}}, {{.Customer.PostalCode}}
{{.Customer.Country}}

ORDER ITEMS:
{{.ItemsList}}

ORDER SUMMARY:
Subtotal: {{.Subtotal}}
Tax (8%): {{.Tax}}
Shipping: {{.Shipping}}
Total: {{.Total}}

PAYMENT METHOD: {{.PaymentMethod}}

{{if .Customer.Notes}}SPECIAL INSTRUCTIONS:
{{.Customer.Notes}}

{{end}}Order Date: {{.OrderDate}}`))

type emailData struct {
	StoreName     string
	Customer      domain.CustomerInfo
	ItemsList     string
	Subtotal      string
	Tax           string
	Shipping      string
	Total         string
	PaymentMethod string
	OrderDate     string
}

func (s *Service) data(order domain.Order) emailData {
	return emailData{
		StoreName:     s.storeName,
		Customer:      order.Customer,
		ItemsList:     itemsList(order.Items),
		Subtotal:      pricing.FormatEuro(order.Totals.Subtotal),
		Tax:           pricing.FormatEuro(order.Totals.Tax),
		Shipping:      pricing.FormatEuro(order.Totals.Shipping),
		Total:         pricing.FormatEuro(order.Totals.Total),
		PaymentMethod: order.PaymentMethod,
		OrderDate:     displayDate(order.OrderDate),
	}
}

// CustomerEmail renders the confirmation sent to the customer.
func (s *Service) CustomerEmail(order domain.Order) (string, error) {
	var b strings.Builder
	if err := customerTmpl.Execute(&b, s.data(order)); err != nil {
		return "", fmt.Errorf("render customer email: %w", err)
	}
	return b.String(), nil
}

// OwnerEmail renders the notification sent to the store owner.
func (s *Service) OwnerEmail(order domain.Order) (string, error) {
	var b strings.Builder
	if err := ownerTmpl.Execute(&b, s.data(order)); err != nil {
		return "", fmt.Errorf("render owner email: %w", err)
	}
	return b.String(), nil
}

// Send renders both emails and logs them.
func (s *Service) Send(order domain.Order) error {
	customerBody, err := s.CustomerEmail(order)
	if err != nil {
		return err
	}
	ownerBody, err := s.OwnerEmail(order)
	if err != nil {
		return err
	}

	s.logger.Printf("=== CUSTOMER EMAIL ===\nTo: %s\nSubject: Order Confirmation - %s\n%s",
		order.Customer.Email, s.storeName, customerBody)
	s.logger.Printf("=== STORE OWNER EMAIL ===\nTo: %s\nSubject: New Order Received\n%s",
		s.ownerEmail, ownerBody)
	return nil
}

// itemsList renders one "- Name (category) x qty = €amount" line per item.
func itemsList(items []domain.CartItem) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		amount := pricing.ParsePrice(it.Price) * float64(it.Quantity)
		lines = append(lines, fmt.Sprintf("- %s (%s) x %d = %s",
			it.Name, it.Category, it.Quantity, pricing.FormatEuro(amount)))
	}
	return strings.Join(lines, "\n")
}

func displayDate(orderDate string) string {
	ts, err := time.Parse(time.RFC3339, orderDate)
	if err != nil {
		return orderDate
	}
	return ts.Format("2 Jan 2006 15:04 MST")
}
