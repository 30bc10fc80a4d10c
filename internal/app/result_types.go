package app

import "github.com/shopspring/decimal"

// PurchaseOrderResult is returned by CreatePurchaseOrder.
type PurchaseOrderResult struct {
	Message   string
	FileName  string
	Total     decimal.Decimal
	LineCount int
	Bytes     int // rendered document size
}
