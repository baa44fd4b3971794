package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateInvoiceNumber generates a unique invoice number for a receipt
func GenerateInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.New().String()[:8])
}
