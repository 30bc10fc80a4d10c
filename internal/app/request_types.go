package app

import "strings"

// CreatePurchaseOrderRequest is the input for CreatePurchaseOrder.
type CreatePurchaseOrderRequest struct {
	AccessToken  string
	JobUUID      string
	SupplierUUID string
	// RequestID correlates log lines; it is optional.
	RequestID string
}

// Validate checks that every required field is present. Whitespace-only
// values count as missing.
func (r CreatePurchaseOrderRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.AccessToken) == "" {
		missing = append(missing, "access_token")
	}
	if strings.TrimSpace(r.JobUUID) == "" {
		missing = append(missing, "job_uuid")
	}
	if strings.TrimSpace(r.SupplierUUID) == "" {
		missing = append(missing, "supplier_uuid")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
