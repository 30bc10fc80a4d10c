package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"po-addon/internal/config"
	"po-addon/internal/core"
	"po-addon/internal/document"
	"po-addon/internal/metrics"
	"po-addon/internal/platform"
)

const (
	diaryEntryType = "Information"
	successMessage = "PO created & attached"
)

// Step names as they appear in logs and metrics.
const (
	stepFetchJob       = "fetch_job"
	stepFetchMaterials = "fetch_materials"
	stepFetchSupplier  = "fetch_supplier"
	stepRender         = "render_document"
	stepDiaryEntry     = "create_diary_entry"
	stepStatusUpdate   = "update_status_field"
)

// Service implements ApplicationService against the field-service platform.
// It keeps no per-request state and may be shared across requests.
type Service struct {
	platform    Platform
	renderer    DocumentRenderer
	statusField platform.CustomFieldValue
	log         *zap.Logger
	now         func() time.Time
}

type ServiceOption func(*Service)

// WithClock overrides the render-date clock.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService constructs a Service. cfg supplies the status field identifier
// and the value written to it.
func NewService(client Platform, renderer DocumentRenderer, cfg config.PlatformConfig, log *zap.Logger, opts ...ServiceOption) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		platform:    client,
		renderer:    renderer,
		statusField: platform.CustomFieldValue{UUID: cfg.StatusFieldUUID, Value: cfg.StatusValue},
		log:         log.Named("purchase_order"),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePurchaseOrder runs the create-po flow end to end.
func (s *Service) CreatePurchaseOrder(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := s.log.With(
		zap.String("job_uuid", req.JobUUID),
		zap.String("supplier_uuid", req.SupplierUUID),
	)
	if req.RequestID != "" {
		log = log.With(zap.String("request_id", req.RequestID))
	}
	auth := platform.NewBearerAuth(req.AccessToken)

	job, materials, err := s.fetchJobAndMaterials(ctx, auth, req.JobUUID, log)
	if err != nil {
		return nil, err
	}

	var contact *platform.Contact
	if err := s.run(log, stepFetchSupplier, UpstreamFetchFailure, func() error {
		var err error
		contact, err = s.platform.GetContact(ctx, auth, req.SupplierUUID)
		return err
	}); err != nil {
		return nil, err
	}

	if job.UUID == "" {
		job.UUID = req.JobUUID
	}
	po := PurchaseOrderFromRecords(job, materials, contact, s.now())

	var pdf []byte
	if err := s.run(log, stepRender, RenderFailure, func() error {
		var err error
		pdf, err = s.renderer.Render(po)
		return err
	}); err != nil {
		return nil, err
	}
	metrics.DocumentBytes.Observe(float64(len(pdf)))

	entry := platform.DiaryEntry{
		EntryType: diaryEntryType,
		Message:   po.NoteMessage(),
		Attachment: &platform.Attachment{
			FileName:    po.FileName(),
			ContentType: document.ContentType,
			Data:        pdf,
		},
	}
	if err := s.run(log, stepDiaryEntry, UpstreamWriteFailure, func() error {
		return s.platform.CreateDiaryEntry(ctx, auth, req.JobUUID, entry)
	}); err != nil {
		return nil, err
	}

	// The diary entry now exists. A failure below leaves it in place.
	if err := s.run(log, stepStatusUpdate, UpstreamWriteFailure, func() error {
		return s.platform.UpdateJobCustomFields(ctx, auth, req.JobUUID, []platform.CustomFieldValue{s.statusField})
	}); err != nil {
		log.Warn("purchase order attached but status field not updated",
			zap.Bool("diary_entry_created", true),
			zap.String("file_name", po.FileName()),
			zap.String("status_field_uuid", s.statusField.UUID),
		)
		return nil, err
	}

	log.Info("purchase order sent",
		zap.String("file_name", po.FileName()),
		zap.Int("lines", len(po.Lines)),
		zap.String("total", core.FormatMoney(po.Total)),
	)

	return &PurchaseOrderResult{
		Message:   successMessage,
		FileName:  po.FileName(),
		Total:     po.Total,
		LineCount: len(po.Lines),
		Bytes:     len(pdf),
	}, nil
}

// fetchJobAndMaterials loads the job and its materials concurrently. The
// first failure cancels the other call.
func (s *Service) fetchJobAndMaterials(ctx context.Context, auth platform.AuthEngine, jobUUID string, log *zap.Logger) (*platform.Job, []platform.Material, error) {
	var (
		job       *platform.Job
		materials []platform.Material
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.run(log, stepFetchJob, UpstreamFetchFailure, func() error {
			var err error
			job, err = s.platform.GetJob(gctx, auth, jobUUID)
			return err
		})
	})
	g.Go(func() error {
		return s.run(log, stepFetchMaterials, UpstreamFetchFailure, func() error {
			var err error
			materials, err = s.platform.ListMaterials(gctx, auth, jobUUID)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return job, materials, nil
}

// run times fn, logs its outcome and wraps a failure in a StepError.
func (s *Service) run(log *zap.Logger, step string, kind ErrorKind, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.ObserveStep(step, start)

	if err != nil {
		fields := append([]zap.Field{
			zap.String("step", step),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		}, platformErrorFields(err)...)
		log.Error("step failed", fields...)
		return &StepError{Kind: kind, Step: step, Err: err}
	}

	log.Debug("step completed", zap.String("step", step), zap.Duration("elapsed", time.Since(start)))
	return nil
}

func platformErrorFields(err error) []zap.Field {
	var apiErr *platform.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}
	return []zap.Field{
		zap.Int("platform_status", apiErr.StatusCode),
		zap.ByteString("platform_body", apiErr.Body),
	}
}

// PurchaseOrderFromRecords builds a purchase order from platform records.
func PurchaseOrderFromRecords(job *platform.Job, materials []platform.Material, contact *platform.Contact, now time.Time) *core.PurchaseOrder {
	inputs := make([]core.MaterialInput, 0, len(materials))
	for _, m := range materials {
		inputs = append(inputs, core.MaterialInput{
			Description: m.Description,
			Quantity:    m.Quantity,
			UnitCost:    m.CostEach,
		})
	}
	return core.BuildPurchaseOrder(
		core.JobInput{UUID: job.UUID, Number: job.JobNumber.String(), Name: job.Name},
		inputs,
		core.Supplier{CompanyName: contact.CompanyName, Name: contact.Name, Email: contact.Email},
		now,
	)
}
