package document

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"po-addon/internal/core"
)

func pumpOrder() *core.PurchaseOrder {
	return core.BuildPurchaseOrder(
		core.JobInput{UUID: "job-uuid", Number: "123", Name: "Fix pump"},
		[]core.MaterialInput{
			{Description: "Pipe", Quantity: decimal.NewFromInt(2), UnitCost: decimal.RequireFromString("10.00")},
			{Description: "Valve", Quantity: decimal.Zero, UnitCost: decimal.RequireFromString("50.00")},
		},
		core.Supplier{CompanyName: "Acme Co", Email: "a@acme.com"},
		time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
	)
}

func TestRender_Content(t *testing.T) {
	out, err := NewRenderer(WithCompression(false)).Render(pumpOrder())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "missing PDF header")
	for _, want := range []string{
		"PURCHASE ORDER",
		"Fix pump",
		"Date: 3/4/2026",
		"Supplier: Acme Co",
		"Email: a@acme.com",
		"Items",
		"1. Pipe \xd7 2 @ $10.00 = $20.00",
		"TOTAL: $20.00",
	} {
		assert.True(t, bytes.Contains(out, []byte(want)), "document should contain %q", want)
	}
	assert.False(t, bytes.Contains(out, []byte("Valve")), "zero-quantity material must not be rendered")
}

func TestRender_Compressed(t *testing.T) {
	out, err := NewRenderer().Render(pumpOrder())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.True(t, bytes.Contains(out, []byte("%%EOF")))
}

func TestRender_Nil(t *testing.T) {
	_, err := NewRenderer().Render(nil)
	assert.Error(t, err)
}

func TestLayout_Paginates(t *testing.T) {
	materials := make([]core.MaterialInput, 0, 120)
	for i := 0; i < 120; i++ {
		materials = append(materials, core.MaterialInput{
			Description: fmt.Sprintf("Part %d", i),
			Quantity:    decimal.NewFromInt(1),
			UnitCost:    decimal.NewFromInt(1),
		})
	}
	po := core.BuildPurchaseOrder(core.JobInput{Number: "9"}, materials, core.Supplier{Name: "Bob"}, time.Now())

	pdf := NewRenderer().layout(po)
	require.NoError(t, pdf.Error())
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestLatin1(t *testing.T) {
	assert.Equal(t, "a \xd7 b \x96 c ?", latin1("a × b – c ☃"))
	assert.Equal(t, "plain", latin1("plain"))
}
