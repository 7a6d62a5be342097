package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/config"
	"github.com/princebakery/pos-api/internal/domain/entity"
	"github.com/princebakery/pos-api/internal/domain/enum"
	"github.com/princebakery/pos-api/pkg/printer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		TokenNo:     42,
		UserID:      uuid.New(),
		OrderType:   enum.OrderTypeTable,
		TableNumber: "7",
		TotalAmount: money("45.00"),
		Status:      enum.OrderStatusPending,
		OrderedAt:   time.Date(2025, 3, 14, 18, 30, 45, 0, time.Local),
		Items: []entity.OrderItem{
			{
				ItemName:    "Bun",
				UnitPrice:   money("10.00"),
				Quantity:    2,
				TotalAmount: money("20.00"),
			},
			{
				ItemName:    "Veg Puff",
				UnitPrice:   money("15.00"),
				Quantity:    1,
				Note:        "no onion",
				TotalAmount: money("25.00"),
				Extras: []entity.OrderItemExtra{
					{
						ExtraName:   "Cheese",
						UnitPrice:   money("5.00"),
						Quantity:    2,
						TotalAmount: money("10.00"),
					},
				},
			},
		},
	}
}

func newReceiptServiceForTest(upi config.UPIConfig) (*ReceiptService, *fakePrinter, *fakePrinter) {
	kitchen := &fakePrinter{}
	counter := &fakePrinter{}
	svc := NewReceiptService(kitchen, counter, 32,
		config.RestaurantConfig{
			Name:    "PRINCE BAKERY",
			Address: "12 Main Road",
			Phone:   "044-2345678",
		},
		upi,
	)
	return svc, kitchen, counter
}

// printable strips ESC/POS control sequences, leaving the receipt text.
func printable(data []byte) string {
	var b strings.Builder
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case printer.ESC:
			if i+1 < len(data) && data[i+1] == '@' {
				i++
			} else {
				i += 2
			}
		case printer.GS:
			if i+1 < len(data) && data[i+1] == '(' {
				// GS ( k pL pH ... : skip the parameter block
				if i+4 < len(data) {
					n := int(data[i+3]) | int(data[i+4])<<8
					i += 4 + n
				}
			} else {
				i += 2
			}
		default:
			b.WriteByte(data[i])
		}
	}
	return b.String()
}

func TestKitchenCopyLayout(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})
	text := printable(svc.RenderKitchen(sampleOrder()))

	assert.Contains(t, text, "PRINCE BAKERY")
	assert.Contains(t, text, "KITCHEN COPY")
	assert.Contains(t, text, "TABLE")
	assert.Contains(t, text, "TABLE: 7")
	assert.Contains(t, text, "TOKEN: 42")
	assert.Contains(t, text, "TIME: 18:30")
	assert.Contains(t, text, "ITEMS:")
	assert.Contains(t, text, "2 x BUN")
	assert.Contains(t, text, "1 x VEG PUFF")
	assert.Contains(t, text, "+ 2x Cheese")
	assert.Contains(t, text, "Note: no onion")
}

func TestKitchenCopyHasNoPrices(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})
	text := printable(svc.RenderKitchen(sampleOrder()))

	assert.NotContains(t, text, "Rs")
	assert.NotContains(t, text, "45.00")
	assert.NotContains(t, text, "TOTAL")
}

func TestKitchenCopyOversizedModeCue(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})
	data := svc.RenderKitchen(sampleOrder())

	// The first letter of the mode is printed at the maximum multiplier
	// the layout uses, as a glanceable cue on the ticket.
	cue := []byte{printer.GS, '!', printer.Size(6, 6), 'T', '\n'}
	assert.Contains(t, string(data), string(cue))
}

func TestCounterCopyLayout(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})
	text := printable(svc.RenderCounter(sampleOrder()))

	assert.Contains(t, text, "PRINCE BAKERY")
	assert.Contains(t, text, "12 Main Road")
	assert.Contains(t, text, "044-2345678")
	assert.Contains(t, text, "CUSTOMER COPY")
	assert.Contains(t, text, "TOKEN: 42")
	assert.Contains(t, text, "TYPE: TABLE")
	assert.Contains(t, text, "TABLE: 7")
	assert.Contains(t, text, "DATE: 2025-03-14")
	assert.Contains(t, text, "TIME: 18:30:45")
	assert.Contains(t, text, "Note: no onion")
	assert.Contains(t, text, "Thank you for your order!")
}

func TestCounterCopyPriceColumns(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})
	text := printable(svc.RenderCounter(sampleOrder()))
	lines := strings.Split(text, "\n")

	// Each priced row is padded to the full 32-character width
	var bunLine, extraLine string
	for _, line := range lines {
		if strings.HasPrefix(line, "2x Bun") {
			bunLine = line
		}
		if strings.HasPrefix(line, "  + 2x Cheese") {
			extraLine = line
		}
	}
	require.NotEmpty(t, bunLine)
	require.NotEmpty(t, extraLine)

	assert.Len(t, bunLine, 32)
	assert.True(t, strings.HasSuffix(bunLine, "Rs20.00"))
	assert.Len(t, extraLine, 32)
	assert.True(t, strings.HasSuffix(extraLine, "Rs10.00"))

	assert.Contains(t, text, "TOTAL: Rs45.00")
}

func TestCounterCopyMainRowUsesBasePrice(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})
	text := printable(svc.RenderCounter(sampleOrder()))

	// The Veg Puff row shows 1 x 15.00; its cheese extra is priced on its
	// own row, so the printed rows add up to the total.
	var puffLine string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "1x Veg Puff") {
			puffLine = line
		}
	}
	require.NotEmpty(t, puffLine)
	assert.True(t, strings.HasSuffix(puffLine, "Rs15.00"))
}

func TestCounterCopyFallsBackToLineSum(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})
	order := sampleOrder()
	order.TotalAmount = decimal.Zero

	text := printable(svc.RenderCounter(order))
	assert.Contains(t, text, "TOTAL: Rs45.00")
}

func TestCounterCopyUPIQRCode(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{VPA: "prince@upi", Payee: "Prince Bakery"})
	data := svc.RenderCounter(sampleOrder())
	raw := string(data)

	assert.Contains(t, raw, "upi://pay?")
	assert.Contains(t, raw, "pa=prince%40upi")
	assert.Contains(t, raw, "am=45.00")
	assert.Contains(t, printable(data), "Scan to pay")
}

func TestCounterCopyNoQRWithoutVPA(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})
	data := svc.RenderCounter(sampleOrder())

	assert.NotContains(t, string(data), "upi://pay?")
	assert.NotContains(t, printable(data), "Scan to pay")
}

func TestNonTableCopiesOmitTableLine(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})
	order := sampleOrder()
	order.OrderType = enum.OrderTypeParcel
	order.TableNumber = ""

	kitchen := printable(svc.RenderKitchen(order))
	counter := printable(svc.RenderCounter(order))

	assert.Contains(t, kitchen, "PARCEL")
	assert.NotContains(t, kitchen, "TABLE:")
	assert.Contains(t, counter, "TYPE: PARCEL")
	assert.NotContains(t, counter, "TABLE:")
}

func TestPrintOrderDispatchesBothCopies(t *testing.T) {
	svc, kitchen, counter := newReceiptServiceForTest(config.UPIConfig{})
	order := sampleOrder()

	result := svc.PrintOrder(order)
	assert.True(t, result.Kitchen)
	assert.True(t, result.Counter)
	require.Equal(t, 1, kitchen.jobCount())
	require.Equal(t, 1, counter.jobCount())

	// The two printers received different layouts
	assert.NotEqual(t, kitchen.jobs[0], counter.jobs[0])
	assert.Contains(t, printable(kitchen.jobs[0]), "KITCHEN COPY")
	assert.Contains(t, printable(counter.jobs[0]), "CUSTOMER COPY")
}

func TestPrintCopyUnknownName(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})

	_, err := svc.PrintCopy(sampleOrder(), "fax")
	assert.Error(t, err)
}

func TestReceiptsEndWithCut(t *testing.T) {
	svc, _, _ := newReceiptServiceForTest(config.UPIConfig{})
	order := sampleOrder()

	for _, data := range [][]byte{svc.RenderKitchen(order), svc.RenderCounter(order)} {
		require.GreaterOrEqual(t, len(data), 3)
		assert.Equal(t, []byte{printer.GS, 'V', 0x00}, data[len(data)-3:])
	}
}
