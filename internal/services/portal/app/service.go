// Package app orchestrates portal operations: project registration, image
// proof verification, and complaint intake. Every row on this surface gets
// its audit tag at creation time.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tidemark/bluecarbon/internal/ledger"
	"github.com/tidemark/bluecarbon/internal/mrv"
	"github.com/tidemark/bluecarbon/internal/platform/id"
	"github.com/tidemark/bluecarbon/internal/services/portal/storage"
)

// ErrProjectNotFound indicates the selected project does not exist.
var ErrProjectNotFound = errors.New("project not found")

// ComplaintStatusPending is the initial status for every filed complaint.
const ComplaintStatusPending = "pending"

// Service coordinates portal verification and persistence.
type Service struct {
	store  storage.Store
	clock  func() time.Time
	tracer trace.Tracer
}

// New creates a portal service backed by the given store.
func New(store storage.Store) *Service {
	return &Service{
		store:  store,
		clock:  time.Now,
		tracer: otel.Tracer("bluecarbon/portal"),
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// RegisterProject stores a new project with an audit tag derived from its
// identity and registration time.
func (s *Service) RegisterProject(ctx context.Context, name, location, description string) (storage.Project, error) {
	if s == nil || s.store == nil {
		return storage.Project{}, fmt.Errorf("service is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "portal.register_project")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Project{}, fmt.Errorf("project name is required")
	}
	projectUUID, err := id.NewUUID()
	if err != nil {
		return storage.Project{}, err
	}
	createdAt := s.clock().UTC()
	seed := projectUUID + name + createdAt.Format(time.RFC3339Nano)
	project, err := s.store.SaveProject(ctx, storage.Project{
		UUID:        projectUUID,
		Name:        name,
		Location:    strings.TrimSpace(location),
		Description: strings.TrimSpace(description),
		CreatedAt:   createdAt,
		TxHash:      ledger.AuditTag(seed),
	})
	if err != nil {
		return storage.Project{}, fmt.Errorf("persist project: %w", err)
	}
	return project, nil
}

// VerifyOutcome reports the verification result of one proof upload.
type VerifyOutcome struct {
	Credit  storage.Credit
	Verdict mrv.Verdict
}

// VerifyImage decodes an uploaded proof image, runs the plausibility check,
// and stores the outcome. Credits use the variance formula and are zero when
// the check fails; undecodable images persist nothing. A zero projectID files
// the credit without a project reference.
func (s *Service) VerifyImage(ctx context.Context, projectID int64, upload io.Reader) (VerifyOutcome, error) {
	if s == nil || s.store == nil {
		return VerifyOutcome{}, fmt.Errorf("service is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "portal.verify_image")
	defer span.End()

	if projectID > 0 {
		if _, err := s.store.GetProject(ctx, projectID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return VerifyOutcome{}, ErrProjectNotFound
			}
			return VerifyOutcome{}, fmt.Errorf("load project: %w", err)
		}
	}

	img, err := mrv.DecodeImage(upload)
	if err != nil {
		return VerifyOutcome{}, err
	}
	verdict := mrv.CheckImage(img)
	var credits float64
	if verdict.Passed {
		credits = mrv.VarianceCredits(img)
	}

	creditUUID, err := id.NewUUID()
	if err != nil {
		return VerifyOutcome{}, err
	}
	timestamp := s.clock().UTC()
	seed := creditUUID + strconv.FormatFloat(credits, 'f', -1, 64) + timestamp.Format(time.RFC3339Nano)
	credit, err := s.store.SaveCredit(ctx, storage.Credit{
		UUID:      creditUUID,
		ProjectID: projectID,
		DataType:  string(mrv.DataTypeImage),
		Credits:   credits,
		Status:    string(verdict.Status()),
		Notes:     verdict.Reason,
		Timestamp: timestamp,
		TxHash:    ledger.AuditTag(seed),
	})
	if err != nil {
		return VerifyOutcome{}, fmt.Errorf("persist credit: %w", err)
	}
	return VerifyOutcome{Credit: credit, Verdict: verdict}, nil
}

// FileComplaint stores a pending complaint against a project.
func (s *Service) FileComplaint(ctx context.Context, projectID int64, body string) (storage.Complaint, error) {
	if s == nil || s.store == nil {
		return storage.Complaint{}, fmt.Errorf("service is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "portal.file_complaint")
	defer span.End()

	body = strings.TrimSpace(body)
	if body == "" {
		return storage.Complaint{}, fmt.Errorf("complaint body is required")
	}
	if projectID > 0 {
		if _, err := s.store.GetProject(ctx, projectID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return storage.Complaint{}, ErrProjectNotFound
			}
			return storage.Complaint{}, fmt.Errorf("load project: %w", err)
		}
	}

	complaintUUID, err := id.NewUUID()
	if err != nil {
		return storage.Complaint{}, err
	}
	createdAt := s.clock().UTC()
	seed := complaintUUID + body + createdAt.Format(time.RFC3339Nano)
	complaint, err := s.store.SaveComplaint(ctx, storage.Complaint{
		UUID:      complaintUUID,
		ProjectID: projectID,
		Complaint: body,
		Status:    ComplaintStatusPending,
		CreatedAt: createdAt,
		TxHash:    ledger.AuditTag(seed),
	})
	if err != nil {
		return storage.Complaint{}, fmt.Errorf("persist complaint: %w", err)
	}
	return complaint, nil
}

// Projects returns every registered project, newest first.
func (s *Service) Projects(ctx context.Context) ([]storage.Project, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service is not configured")
	}
	return s.store.ListProjects(ctx)
}

// CreditEntry pairs a credit record with its project name, when the project
// still exists.
type CreditEntry struct {
	Credit      storage.Credit
	ProjectName string
}

// CreditLedger returns every credit, newest first, with project names joined
// leniently: credits referencing missing projects keep an empty name.
func (s *Service) CreditLedger(ctx context.Context) ([]CreditEntry, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service is not configured")
	}
	credits, err := s.store.ListCredits(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.projectNames(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]CreditEntry, 0, len(credits))
	for _, credit := range credits {
		entries = append(entries, CreditEntry{Credit: credit, ProjectName: names[credit.ProjectID]})
	}
	return entries, nil
}

// ComplaintEntry pairs a complaint with its project name, when available.
type ComplaintEntry struct {
	Complaint   storage.Complaint
	ProjectName string
}

// Complaints returns every complaint, newest first, with project names joined
// leniently.
func (s *Service) Complaints(ctx context.Context) ([]ComplaintEntry, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service is not configured")
	}
	complaints, err := s.store.ListComplaints(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.projectNames(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]ComplaintEntry, 0, len(complaints))
	for _, complaint := range complaints {
		entries = append(entries, ComplaintEntry{Complaint: complaint, ProjectName: names[complaint.ProjectID]})
	}
	return entries, nil
}

func (s *Service) projectNames(ctx context.Context) (map[int64]string, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(projects))
	for _, project := range projects {
		names[project.ID] = project.Name
	}
	return names, nil
}
