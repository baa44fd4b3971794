package service

import (
	"context"
	"testing"
	"time"

	"github.com/kasirku/kasir-api/internal/domain/entity"
	"github.com/kasirku/kasir-api/pkg/printer"
	"github.com/stretchr/testify/assert"
)

type capturePrinter struct {
	data []byte
}

func (p *capturePrinter) Print(data []byte) error {
	p.data = data
	return nil
}

func (p *capturePrinter) IsConnected() bool { return true }

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{1000, "Rp1.000"},
		{15000, "Rp15.000"},
		{1250000, "Rp1.250.000"},
		{-5000, "-Rp5.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRupiah(tt.amount))
	}
}

func TestPrintReceiptRendersInvoice(t *testing.T) {
	p := &capturePrinter{}
	svc := NewPrinterService(p, 32)

	address := "Jl. Sudirman No. 1"
	store := &entity.Store{Name: "Toko Maju", Address: &address}
	receipt := &entity.Receipt{
		InvoiceNumber: "INV-20260315-0001",
		PaymentMethod: "cash",
		CreatedAt:     time.Date(2026, 3, 15, 10, 30, 0, 0, time.Local),
		Subtotal:      13000,
		Discount:      500,
		Total:         12500,
		Items: []entity.ReceiptItem{
			{ProductName: "Pulpen", Quantity: 3, UnitPrice: 1000, TotalPrice: 3000},
		},
	}

	err := svc.PrintReceipt(context.Background(), store, receipt)
	assert.NoError(t, err)

	out := string(p.data)
	assert.Contains(t, out, "Toko Maju")
	assert.Contains(t, out, "INV-20260315-0001")
	assert.Contains(t, out, "Pulpen")
	assert.Contains(t, out, "Rp12.500")
	assert.Contains(t, out, "Terima kasih!")
}

func TestPrintReceiptNilReceipt(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), 32)
	err := svc.PrintReceipt(context.Background(), nil, nil)
	assert.Error(t, err)
}
