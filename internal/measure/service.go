package measure

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxImageBytes caps uploaded meter photos at 10 MiB.
const MaxImageBytes = 10 << 20

//go:generate mockgen -source=service.go -destination=service_mock.go -package=measure
type Repository interface {
	ExistsForMonth(ctx context.Context, customerCode string, t Type, at time.Time) (bool, error)
	CreateMeasure(ctx context.Context, m *Measure) error
	FindForConfirmation(ctx context.Context, id uuid.UUID, value decimal.Decimal) (*Measure, error)
	SetConfirmed(ctx context.Context, id uuid.UUID) error
	ListByCustomer(ctx context.Context, customerCode string, t *Type) ([]*Measure, error)
}

// ValueExtractor turns a meter photo into a numeric consumption value.
// Implementations report failures as errors, including the case where the
// provider answered but no reading could be found in the text.
type ValueExtractor interface {
	ExtractValue(ctx context.Context, image []byte, mimeType, meterKind string) (decimal.Decimal, error)
}

// FileStore persists an uploaded image and returns the public URL it will be
// reachable at.
type FileStore interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

type Service struct {
	repo      Repository
	extractor ValueExtractor
	files     FileStore
}

func NewService(repo Repository, extractor ValueExtractor, files FileStore) *Service {
	return &Service{repo: repo, extractor: extractor, files: files}
}

type SubmitParams struct {
	CustomerCode string
	MeasureType  string
	Datetime     time.Time
	Image        []byte
	ContentType  string
}

var imageExtensions = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
}

// Submit validates a reading, rejects a second report for the same customer,
// meter kind and calendar month, extracts the consumption value from the
// photo and persists both the image and the measure. The duplicate check runs
// before the extractor so a rejected submission costs no provider call and
// stores no file; the row is inserted only after both succeed.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (*Measure, error) {
	if strings.TrimSpace(params.CustomerCode) == "" {
		return nil, fmt.Errorf("%w: customer_code is required", ErrInvalidData)
	}

	measureType, err := ParseType(params.MeasureType)
	if err != nil {
		return nil, err
	}

	if params.Datetime.IsZero() {
		return nil, fmt.Errorf("%w: measure_datetime is required", ErrInvalidData)
	}

	if len(params.Image) == 0 {
		return nil, fmt.Errorf("%w: image is required", ErrInvalidData)
	}

	if len(params.Image) > MaxImageBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", ErrInvalidData, MaxImageBytes)
	}

	ext, ok := imageExtensions[params.ContentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported image type %q", ErrInvalidData, params.ContentType)
	}

	exists, err := s.repo.ExistsForMonth(ctx, params.CustomerCode, measureType, params.Datetime)
	if err != nil {
		return nil, fmt.Errorf("checking monthly report: %w", err)
	}

	if exists {
		return nil, ErrDoubleReport
	}

	value, err := s.extractor.ExtractValue(ctx, params.Image, params.ContentType, strings.ToLower(string(measureType)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	imageURL, err := s.files.Save(ctx, newImageFilename(ext), params.Image)
	if err != nil {
		return nil, fmt.Errorf("storing image: %w", err)
	}

	m := &Measure{
		ID:           uuid.New(),
		CustomerCode: params.CustomerCode,
		ImageURL:     imageURL,
		Value:        value,
		Type:         measureType,
		Datetime:     params.Datetime,
		HasConfirmed: false,
	}

	if err := s.repo.CreateMeasure(ctx, m); err != nil {
		// Two concurrent submissions can both pass the guard; the unique
		// month index in the store turns the loser into a double report.
		if errors.Is(err, ErrDoubleReport) {
			return nil, ErrDoubleReport
		}

		return nil, fmt.Errorf("creating measure: %w", err)
	}

	return m, nil
}

// Confirm transitions a pending measure to confirmed. The lookup requires the
// exact stored value, so confirmation attests the customer saw the computed
// reading rather than overwriting it. A measure confirms at most once.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID, value decimal.Decimal) error {
	m, err := s.repo.FindForConfirmation(ctx, id, value)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}

		return fmt.Errorf("looking up measure: %w", err)
	}

	if m.HasConfirmed {
		return ErrAlreadyConfirmed
	}

	if err := s.repo.SetConfirmed(ctx, id); err != nil {
		return fmt.Errorf("confirming measure: %w", err)
	}

	return nil
}

// List returns a customer's readings, optionally filtered by meter type.
// Zero matches is a not-found condition, not an empty success.
func (s *Service) List(ctx context.Context, customerCode, typeFilter string) ([]*Measure, error) {
	if strings.TrimSpace(customerCode) == "" {
		return nil, fmt.Errorf("%w: customer_code is required", ErrInvalidData)
	}

	var filter *Type

	if typeFilter != "" {
		t, err := ParseType(typeFilter)
		if err != nil {
			return nil, err
		}

		filter = &t
	}

	measures, err := s.repo.ListByCustomer(ctx, customerCode, filter)
	if err != nil {
		return nil, fmt.Errorf("listing measures: %w", err)
	}

	if len(measures) == 0 {
		return nil, ErrNoMeasures
	}

	return measures, nil
}

// newImageFilename builds a collision-resistant filename from the upload
// instant and a random suffix.
func newImageFilename(ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("image-%d-%s.%s", time.Now().UnixMilli(), suffix, ext)
}
