package platform

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Text is a string field that the platform sometimes serialises as a number.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// Job is the subset of the platform job record the service reads.
type Job struct {
	UUID         string             `json:"uuid"`
	JobNumber    Text               `json:"job_number"`
	Name         string             `json:"name"`
	Status       string             `json:"status"`
	CustomFields []CustomFieldValue `json:"custom_fields,omitempty"`
}

// Amount is a decimal the platform may send as a number, a numeric string,
// an empty string or null. Blank and null read as zero.
type Amount decimal.Decimal

func (a *Amount) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "null", `""`:
		*a = Amount(decimal.Zero)
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = Amount(d)
	return nil
}

func (a Amount) Decimal() decimal.Decimal { return decimal.Decimal(a) }

// Material is one material line booked against a job. Quantity and CostEach
// are decoded as Amount, so a blank value becomes zero and the line is later
// dropped by the quantity filter.
type Material struct {
	UUID        string          `json:"uuid"`
	JobUUID     string          `json:"job_uuid"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	CostEach    decimal.Decimal `json:"cost_each"`
}

func (m *Material) UnmarshalJSON(data []byte) error {
	type material Material
	aux := struct {
		*material
		Quantity Amount `json:"quantity"`
		CostEach Amount `json:"cost_each"`
	}{material: (*material)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Quantity = aux.Quantity.Decimal()
	m.CostEach = aux.CostEach.Decimal()
	return nil
}

// Contact is a supplier/company contact record.
type Contact struct {
	UUID        string `json:"uuid"`
	CompanyName string `json:"company_name"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

// CustomFieldValue sets one job custom field.
type CustomFieldValue struct {
	UUID  string `json:"uuid"`
	Value string `json:"value"`
}

// DiaryEntry is a note posted against a job.
type DiaryEntry struct {
	EntryType  string
	Message    string
	Attachment *Attachment
}

// Attachment is a file uploaded with a diary entry.
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

type jobUpdate struct {
	CustomFields []CustomFieldValue `json:"custom_fields"`
}
