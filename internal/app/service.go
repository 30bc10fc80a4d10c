package app

import (
	"context"

	"po-addon/internal/core"
	"po-addon/internal/platform"
)

// ApplicationService is the single interface the web adapter calls.
// Implementations contain no HTTP or presentation logic.
type ApplicationService interface {
	// CreatePurchaseOrder fetches the job, its materials and the supplier,
	// renders a purchase order, attaches it to the job as a diary entry and
	// marks the job's PO status field. It stops at the first failing step;
	// writes already made on the platform are not undone.
	CreatePurchaseOrder(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResult, error)
}

// Platform is the subset of the field-service platform client the service uses.
type Platform interface {
	GetJob(ctx context.Context, auth platform.AuthEngine, jobUUID string) (*platform.Job, error)
	ListMaterials(ctx context.Context, auth platform.AuthEngine, jobUUID string) ([]platform.Material, error)
	GetContact(ctx context.Context, auth platform.AuthEngine, contactUUID string) (*platform.Contact, error)
	CreateDiaryEntry(ctx context.Context, auth platform.AuthEngine, jobUUID string, entry platform.DiaryEntry) error
	UpdateJobCustomFields(ctx context.Context, auth platform.AuthEngine, jobUUID string, fields []platform.CustomFieldValue) error
}

// DocumentRenderer renders a purchase order to completion.
type DocumentRenderer interface {
	Render(po *core.PurchaseOrder) ([]byte, error)
}

var _ ApplicationService = (*Service)(nil)
