package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is how the render date appears on a purchase order.
const DateLayout = "1/2/2006"

// PurchaseOrder is the in-memory document sent to a supplier. It is built per
// request and never stored.
type PurchaseOrder struct {
	JobUUID   string
	JobNumber string
	JobName   string
	Date      time.Time // render time, not job time
	Supplier  Supplier
	Lines     []PurchaseOrderLine
	Total     decimal.Decimal // rounded to 2 dp
}

// PurchaseOrderLine is one included material.
type PurchaseOrderLine struct {
	LineNumber  int // 1-based
	Description string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	LineTotal   decimal.Decimal
}

// JobInput identifies the job a purchase order is raised against.
type JobInput struct {
	UUID   string
	Number string
	Name   string
}

// MaterialInput is a material line as fetched from the platform, before filtering.
type MaterialInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
}
