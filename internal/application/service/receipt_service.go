package service

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/config"
	"github.com/princebakery/pos-api/internal/domain/entity"
	"github.com/princebakery/pos-api/internal/domain/enum"
	"github.com/princebakery/pos-api/pkg/printer"
	"github.com/shopspring/decimal"
)

// ReceiptService renders the two receipt layouts from a frozen order and
// dispatches them to the kitchen and counter printers. The two dispatches
// are independent and best-effort: a dead printer is logged and reported
// as a boolean, never raised, because a lost receipt must not undo a sale.
type ReceiptService struct {
	kitchen    printer.Printer
	counter    printer.Printer
	width      int
	restaurant config.RestaurantConfig
	upi        config.UPIConfig
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	kitchen printer.Printer,
	counter printer.Printer,
	width int,
	restaurant config.RestaurantConfig,
	upi config.UPIConfig,
) *ReceiptService {
	if width <= 0 {
		width = 32
	}
	return &ReceiptService{
		kitchen:    kitchen,
		counter:    counter,
		width:      width,
		restaurant: restaurant,
		upi:        upi,
	}
}

// PrintResult reports the per-printer outcome of a receipt dispatch.
type PrintResult struct {
	OrderID uuid.UUID `json:"order_id"`
	Kitchen bool      `json:"kitchen"`
	Counter bool      `json:"counter"`
}

// PrintOrder renders both layouts and submits each to its printer. Neither
// failure blocks the other attempt.
func (s *ReceiptService) PrintOrder(order *entity.Order) PrintResult {
	result := PrintResult{OrderID: order.ID}
	result.Kitchen = s.dispatch(s.kitchen, s.RenderKitchen(order), "kitchen", order)
	result.Counter = s.dispatch(s.counter, s.RenderCounter(order), "counter", order)
	return result
}

// PrintCopy reprints a single copy ("kitchen" or "counter").
func (s *ReceiptService) PrintCopy(order *entity.Order, copyName string) (bool, error) {
	switch copyName {
	case "kitchen":
		return s.dispatch(s.kitchen, s.RenderKitchen(order), "kitchen", order), nil
	case "counter":
		return s.dispatch(s.counter, s.RenderCounter(order), "counter", order), nil
	}
	return false, fmt.Errorf("unknown receipt copy %q", copyName)
}

func (s *ReceiptService) dispatch(p printer.Printer, data []byte, name string, order *entity.Order) bool {
	if err := p.Print(data); err != nil {
		log.Printf("Order %d: %s printer failed: %v", order.TokenNo, name, err)
		return false
	}
	return true
}

// RenderKitchen renders the kitchen copy: big order-type cue, token, time,
// items with extras and notes. No prices appear anywhere on this copy.
func (s *ReceiptService) RenderKitchen(order *entity.Order) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetSize(2, 2).
		Text(s.restaurant.Name).
		Text("KITCHEN COPY").
		LineFeed()

	orderType := strings.ToUpper(order.OrderType.String())

	// Single oversized letter as a quick visual cue for the kitchen
	doc.SetSize(6, 6).
		Text(orderType[:1])

	doc.SetSize(2, 2).
		Text(orderType)
	if order.OrderType == enum.OrderTypeTable && order.TableNumber != "" {
		doc.TextF("TABLE: %s", order.TableNumber)
	}
	doc.LineFeed()

	doc.SetAlign(printer.AlignLeft).
		SetSize(1, 1).
		Separator('=').
		TextF("TOKEN: %d", order.TokenNo).
		TextF("TIME: %s", order.OrderedAt.Local().Format("15:04")).
		Separator('=')

	doc.SetSize(2, 2).
		Text("ITEMS:").
		LineFeed()

	for i := range order.Items {
		item := &order.Items[i]

		doc.SetBold(true).
			SetSize(2, 2).
			TextF("%d x %s", item.Quantity, strings.ToUpper(item.ItemName))

		doc.SetBold(false).SetSize(1, 1)
		for j := range item.Extras {
			extra := &item.Extras[j]
			doc.TextF("  + %dx %s", extra.Quantity, extra.ExtraName)
		}
		if item.Note != "" {
			doc.TextF("   Note: %s", item.Note)
		}
		doc.LineFeed()
	}

	doc.SetAlign(printer.AlignCenter).
		SetBold(false).
		SetSize(1, 1).
		Separator('=').
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// RenderCounter renders the customer copy: token, order info, price-aligned
// item rows, the frozen total, the optional UPI QR and a closing message.
func (s *ReceiptService) RenderCounter(order *entity.Order) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetSize(2, 2).
		Text(s.restaurant.Name)

	doc.SetBold(false).SetSize(1, 1)
	if s.restaurant.Address != "" {
		doc.Text(s.restaurant.Address)
	}
	if s.restaurant.Phone != "" {
		doc.Text(s.restaurant.Phone)
	}
	doc.Text("CUSTOMER COPY").
		Separator('-')

	doc.SetBold(true).
		SetSize(3, 3).
		TextF("TOKEN: %d", order.TokenNo).
		LineFeed()

	doc.SetAlign(printer.AlignLeft).
		SetSize(1, 1).
		TextF("TYPE: %s", strings.ToUpper(order.OrderType.String()))
	if order.OrderType == enum.OrderTypeTable && order.TableNumber != "" {
		doc.TextF("TABLE: %s", order.TableNumber)
	}
	doc.TextF("DATE: %s", order.OrderedAt.Local().Format("2006-01-02")).
		TextF("TIME: %s", order.OrderedAt.Local().Format("15:04:05"))

	doc.SetBold(false).
		Separator('-').
		SetBold(true).
		Text("ITEMS:").
		SetBold(false)

	for i := range order.Items {
		item := &order.Items[i]

		base := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		doc.PriceLine(
			fmt.Sprintf("%dx %s", item.Quantity, item.ItemName),
			formatMoney(base),
		)
		for j := range item.Extras {
			extra := &item.Extras[j]
			doc.PriceLine(
				fmt.Sprintf("  + %dx %s", extra.Quantity, extra.ExtraName),
				formatMoney(extra.TotalAmount),
			)
		}
		if item.Note != "" {
			doc.TextF("   Note: %s", item.Note)
		}
	}

	doc.Separator('-')

	// The frozen total is authoritative; summing the lines is only a
	// fallback for legacy rows stored without one.
	total := order.TotalAmount
	if total.IsZero() {
		total = order.SumLines()
	}
	doc.SetBold(true).
		TextF("TOTAL: %s", formatMoney(total)).
		SetBold(false).
		Separator('-')

	if s.upi.VPA != "" {
		doc.SetAlign(printer.AlignCenter).
			Text("Scan to pay").
			QRCode(s.upiLink(order, total), 0).
			LineFeed()
	}

	doc.SetAlign(printer.AlignCenter).
		Text("Thank you for your order!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// upiLink builds the static pay-to-merchant deep link encoded in the QR.
func (s *ReceiptService) upiLink(order *entity.Order, total decimal.Decimal) string {
	note := fmt.Sprintf("Order %d", order.TokenNo)
	if order.OrderType == enum.OrderTypeTable && order.TableNumber != "" {
		note = fmt.Sprintf("Order %d Table %s", order.TokenNo, order.TableNumber)
	}

	q := url.Values{}
	q.Set("pa", s.upi.VPA)
	if s.upi.Payee != "" {
		q.Set("pn", s.upi.Payee)
	}
	q.Set("am", total.StringFixed(2))
	q.Set("cu", "INR")
	q.Set("tn", note)
	return "upi://pay?" + q.Encode()
}

// formatMoney renders a monetary value with two decimals and the ASCII
// "Rs" prefix. The rupee glyph is avoided on purpose: the target printers
// mangle non-ASCII currency symbols.
func formatMoney(amount decimal.Decimal) string {
	return "Rs" + amount.StringFixed(2)
}
