package service

import (
	"context"
	"fmt"

	"github.com/kasirku/kasir-api/internal/domain/entity"
	"github.com/kasirku/kasir-api/pkg/apperror"
	"github.com/kasirku/kasir-api/pkg/printer"
)

// PrinterService renders receipts to ESC/POS and sends them to the
// configured thermal printer.
type PrinterService struct {
	printer   printer.Printer
	charWidth int
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, charWidth int) *PrinterService {
	return &PrinterService{printer: p, charWidth: charWidth}
}

// IsConnected reports whether the configured printer is reachable
func (s *PrinterService) IsConnected() bool {
	return s.printer.IsConnected()
}

// PrintReceipt renders and prints the receipt under the store's name
func (s *PrinterService) PrintReceipt(ctx context.Context, store *entity.Store, receipt *entity.Receipt) error {
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}

	data := s.render(store, receipt)
	if err := s.printer.Print(data); err != nil {
		return apperror.NewAppError(503, fmt.Sprintf("Printer unavailable: %v", err))
	}
	return nil
}

func (s *PrinterService) render(store *entity.Store, receipt *entity.Receipt) []byte {
	doc := printer.NewDocument(s.charWidth)

	doc.Align(printer.AlignCenter).Bold(true)
	if store != nil {
		doc.Line(store.Name)
	}
	doc.Bold(false)
	if store != nil && store.Address != nil {
		doc.Line(*store.Address)
	}
	if store != nil && store.Phone != nil {
		doc.Line(*store.Phone)
	}

	doc.Align(printer.AlignLeft).Divider('=')
	doc.Columns("No", receipt.InvoiceNumber)
	doc.Columns("Tanggal", receipt.CreatedAt.Format("02/01/2006 15:04"))
	doc.Columns("Bayar", receipt.PaymentMethod)
	doc.Divider('-')

	for _, item := range receipt.Items {
		doc.Line(item.ProductName)
		doc.Columns(
			fmt.Sprintf("  %d x %s", item.Quantity, formatRupiah(item.UnitPrice)),
			formatRupiah(item.TotalPrice),
		)
	}

	doc.Divider('-')
	doc.Columns("Subtotal", formatRupiah(receipt.Subtotal))
	if receipt.Discount > 0 {
		doc.Columns("Diskon", "-"+formatRupiah(receipt.Discount))
	}
	doc.Bold(true).Columns("TOTAL", formatRupiah(receipt.Total)).Bold(false)

	doc.Divider('=')
	doc.Align(printer.AlignCenter)
	doc.Line("Terima kasih!")
	doc.Feed(3).Cut()

	return doc.Bytes()
}

// formatRupiah renders an amount with thousand separators, no decimals,
// matching Indonesian price display conventions.
func formatRupiah(amount float64) string {
	n := int64(amount)
	if n < 0 {
		return "-" + formatRupiah(-amount)
	}

	s := fmt.Sprintf("%d", n)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return "Rp" + string(out)
}
