// render-po previews a purchase order offline. It reads a JSON fixture with
// the same shape the platform returns and writes the rendered PDF.
//
// Usage: go run ./cmd/render-po -in fixture.json -out po.pdf
//
// Pass -out - to write the PDF to stdout.
//
// Fixture:
//
//	{"job": {...}, "materials": [...], "supplier": {...}}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"po-addon/internal/app"
	"po-addon/internal/core"
	"po-addon/internal/document"
	"po-addon/internal/platform"
)

type fixture struct {
	Job       platform.Job        `json:"job"`
	Materials []platform.Material `json:"materials"`
	Supplier  platform.Contact    `json:"supplier"`
}

func main() {
	in := flag.String("in", "", "fixture JSON file (default stdin)")
	out := flag.String("out", "", "output PDF file, - for stdout (default PO_<job number>.pdf)")
	raw := flag.Bool("uncompressed", false, "write uncompressed content streams")
	flag.Parse()

	src := os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatalf("open fixture: %v", err)
		}
		defer f.Close()
		src = f
	}

	var fx fixture
	if err := json.NewDecoder(src).Decode(&fx); err != nil {
		log.Fatalf("decode fixture: %v", err)
	}

	po := app.PurchaseOrderFromRecords(&fx.Job, fx.Materials, &fx.Supplier, time.Now())
	pdf, err := document.NewRenderer(document.WithCompression(!*raw)).Render(po)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	path, err := writePDF(*out, po.FileName(), pdf, os.Stdout)
	if err != nil {
		log.Fatalf("write: %v", err)
	}
	fmt.Fprintf(os.Stderr, "%s: %d line(s), total $%s, %d bytes\n", path, len(po.Lines), core.FormatMoney(po.Total), len(pdf))
}

// writePDF writes pdf to out, to stdout when out is "-", or to defaultName
// when out is empty. It returns where the bytes went.
func writePDF(out, defaultName string, pdf []byte, stdout io.Writer) (string, error) {
	switch out {
	case "-":
		if _, err := stdout.Write(pdf); err != nil {
			return "stdout", err
		}
		return "stdout", nil
	case "":
		out = defaultName
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return out, err
	}
	return out, nil
}
