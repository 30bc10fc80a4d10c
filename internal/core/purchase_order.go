package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BuildPurchaseOrder assembles a purchase order from fetched records.
// Materials with a quantity of zero or less are dropped from both the lines
// and the total.
func BuildPurchaseOrder(job JobInput, materials []MaterialInput, supplier Supplier, now time.Time) *PurchaseOrder {
	po := &PurchaseOrder{
		JobUUID:   job.UUID,
		JobNumber: job.Number,
		JobName:   job.Name,
		Date:      now,
		Supplier:  supplier,
		Lines:     make([]PurchaseOrderLine, 0, len(materials)),
	}

	total := decimal.Zero
	for _, m := range IncludedMaterials(materials) {
		lineTotal := m.Quantity.Mul(m.UnitCost)
		po.Lines = append(po.Lines, PurchaseOrderLine{
			LineNumber:  len(po.Lines) + 1,
			Description: m.Description,
			Quantity:    m.Quantity,
			UnitCost:    m.UnitCost,
			LineTotal:   lineTotal,
		})
		total = total.Add(lineTotal)
	}
	po.Total = total.Round(2)

	return po
}

// IncludedMaterials returns the materials with a strictly positive quantity,
// in their original order.
func IncludedMaterials(materials []MaterialInput) []MaterialInput {
	out := make([]MaterialInput, 0, len(materials))
	for _, m := range materials {
		if m.Quantity.IsPositive() {
			out = append(out, m)
		}
	}
	return out
}

// FileName is the attachment name, e.g. "PO_123.pdf".
func (po *PurchaseOrder) FileName() string {
	ref := po.JobNumber
	if strings.TrimSpace(ref) == "" {
		ref = po.JobUUID
	}
	return "PO_" + fileSafe.Replace(ref) + ".pdf"
}

// NoteMessage is the diary text posted alongside the document.
func (po *PurchaseOrder) NoteMessage() string {
	return "PO sent to " + po.Supplier.DisplayName()
}

// FormattedDate renders the purchase-order date.
func (po *PurchaseOrder) FormattedDate() string {
	return po.Date.Format(DateLayout)
}

// Describe renders one line the way it appears on the document.
func (l PurchaseOrderLine) Describe() string {
	return fmt.Sprintf("%d. %s × %s @ $%s = $%s",
		l.LineNumber, l.Description, l.Quantity.String(), FormatMoney(l.UnitCost), FormatMoney(l.LineTotal))
}

// FormatMoney renders an amount with exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

var fileSafe = strings.NewReplacer("/", "-", "\\", "-", `"`, "", "\n", "", "\r", "")
