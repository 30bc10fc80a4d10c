package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"po-addon/internal/app"
	"po-addon/internal/metrics"

	"github.com/invopop/jsonschema"
	"go.uber.org/zap"
)

const missingFieldsMessage = "Missing required fields"

// createPORequest is the body of POST /create-po.
type createPORequest struct {
	AccessToken  string `json:"access_token" jsonschema:"minLength=1,description=Platform OAuth access token"`
	JobUUID      string `json:"job_uuid" jsonschema:"minLength=1,description=UUID of the job to raise the purchase order against"`
	SupplierUUID string `json:"supplier_uuid" jsonschema:"minLength=1,description=UUID of the supplier contact"`
}

type createPOResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// createPO handles POST /create-po.
func (h *Handler) createPO(w http.ResponseWriter, r *http.Request) {
	var body createPORequest
	if !decodeJSON(w, r, &body) {
		metrics.RecordOutcome("invalid_request")
		return
	}

	requestID := requestIDFromContext(r.Context())
	req := app.CreatePurchaseOrderRequest{
		AccessToken:  body.AccessToken,
		JobUUID:      body.JobUUID,
		SupplierUUID: body.SupplierUUID,
		RequestID:    requestID,
	}

	// An accepted request runs to completion even if the caller goes away.
	ctx := context.WithoutCancel(r.Context())
	result, err := h.svc.CreatePurchaseOrder(ctx, req)
	metrics.RecordOutcome(app.Outcome(err))

	if err != nil {
		if errors.Is(err, app.ErrInvalidRequest) {
			writeError(w, r, missingFieldsMessage, "INVALID_REQUEST", http.StatusBadRequest)
			return
		}
		h.log.Error("create-po failed",
			zap.String("request_id", requestID),
			zap.String("job_uuid", body.JobUUID),
			zap.String("outcome", app.Outcome(err)),
			zap.Error(err),
		)
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createPOResponse{Success: true, Message: result.Message})
}

// createPOSchema handles GET /api/create-po/schema.
func (h *Handler) createPOSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	_, _ = w.Write(h.schema)
}

func buildCreatePOSchema() []byte {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&createPORequest{})
	schema.Title = "Create purchase order"
	out, err := json.Marshal(schema)
	if err != nil {
		panic("create-po schema: " + err.Error())
	}
	return out
}
