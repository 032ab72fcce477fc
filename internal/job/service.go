package job

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"dcjobs/internal/directory"
)

var ErrNotFound = errors.New("job not found")
var ErrInvalidInput = errors.New("invalid input")

// basic local@domain shape, nothing more
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service enforces field validity and applies all job mutations. It is
// the only component that writes the jobs table.
type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	JobReceivedDate time.Time // zero value means today
	ModeReceived    string
	JobDescription  string
	TypeOfJob       string
	AssignedTo      uint64

	TargetCompletionDate time.Time
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func (in *CreateInput) validate() error {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.TrimSpace(in.ClientEmail)
	in.ClientPhone = strings.TrimSpace(in.ClientPhone)
	in.JobDescription = strings.TrimSpace(in.JobDescription)
	in.TypeOfJob = strings.TrimSpace(in.TypeOfJob)

	if in.ClientName == "" {
		return invalidf("client_name is required")
	}
	if in.ClientEmail == "" {
		return invalidf("client_email is required")
	}
	if !emailRe.MatchString(in.ClientEmail) {
		return invalidf("client_email is not a valid email address")
	}
	if in.ClientPhone == "" {
		return invalidf("client_phone is required")
	}
	if !ValidMode(in.ModeReceived) {
		return invalidf("mode_received %q is not a recognized mode", in.ModeReceived)
	}
	if in.JobDescription == "" {
		return invalidf("job_description is required")
	}
	if in.TypeOfJob == "" {
		return invalidf("type_of_job is required")
	}
	if in.AssignedTo == 0 {
		return invalidf("assigned_to is required")
	}
	if in.TargetCompletionDate.IsZero() {
		return invalidf("target_completion_date is required")
	}
	return nil
}

// Create validates the intake fields, then inserts the row and stamps
// job_id from the assigned primary key in the same transaction, so two
// concurrent creates can never share an identifier.
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}

	db := s.DB.WithContext(ctx)

	// type_of_job must match a code-list label, assigned_to an employee
	var n int64
	if err := db.Model(&directory.Code{}).
		Where("(item || ' - ' || hsn_code) = ?", in.TypeOfJob).
		Count(&n).Error; err != nil {
		return "", err
	}
	if n == 0 {
		return "", invalidf("type_of_job %q is not in the code list", in.TypeOfJob)
	}
	if err := db.Model(&directory.Employee{}).
		Where("id = ?", in.AssignedTo).
		Count(&n).Error; err != nil {
		return "", err
	}
	if n == 0 {
		return "", invalidf("assigned_to %d is not a known employee", in.AssignedTo)
	}

	received := in.JobReceivedDate
	if received.IsZero() {
		now := time.Now().UTC()
		received = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	var jobID string
	err := db.Transaction(func(tx *gorm.DB) error {
		j := Job{
			ClientName:           in.ClientName,
			ClientEmail:          in.ClientEmail,
			ClientPhone:          in.ClientPhone,
			JobReceivedDate:      received,
			ModeReceived:         in.ModeReceived,
			JobDescription:       in.JobDescription,
			TypeOfJob:            in.TypeOfJob,
			AssignedTo:           in.AssignedTo,
			TargetCompletionDate: in.TargetCompletionDate,
			Status:               StatusNew,
		}
		if err := tx.Create(&j).Error; err != nil {
			return err
		}

		jobID = fmt.Sprintf("DC-%d", j.ID)
		return tx.Model(&Job{}).Where("id = ?", j.ID).
			Update("job_id", jobID).Error
	})
	if err != nil {
		return "", fmt.Errorf("create job: %w", err)
	}
	return jobID, nil
}

// SearchFilter fields combine with AND semantics; zero values are
// ignored. Date bounds are inclusive.
type SearchFilter struct {
	ClientName string
	JobID      string
	Status     string
	AssignedTo string
	StartDate  *time.Time
	EndDate    *time.Time
}

// Search returns matching jobs newest first. An empty filter returns
// everything.
func (s *Service) Search(ctx context.Context, f SearchFilter) ([]Job, error) {
	if f.Status != "" && !ValidStatus(f.Status) {
		return nil, invalidf("status %q is not a recognized status", f.Status)
	}

	q := s.DB.WithContext(ctx).Model(&Job{})

	if v := strings.TrimSpace(f.ClientName); v != "" {
		q = q.Where("lower(client_name) like ?", "%"+strings.ToLower(v)+"%")
	}
	if v := strings.TrimSpace(f.JobID); v != "" {
		q = q.Where("lower(job_id) like ?", "%"+strings.ToLower(v)+"%")
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if v := strings.TrimSpace(f.AssignedTo); v != "" {
		q = q.Where("cast(assigned_to as text) like ?", "%"+v+"%")
	}
	if f.StartDate != nil {
		q = q.Where("job_received_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("job_received_date <= ?", *f.EndDate)
	}

	rows := make([]Job, 0)
	if err := q.Order("id desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// List returns all jobs newest first.
func (s *Service) List(ctx context.Context) ([]Job, error) {
	return s.Search(ctx, SearchFilter{})
}

func (s *Service) Get(ctx context.Context, id uint64) (*Job, error) {
	var j Job
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&j).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

// AdminUpdateInput carries the administrative dashboard fields. Exactly
// these five columns are overwritten; everything else stays untouched.
type AdminUpdateInput struct {
	InvoiceRaised   Flag
	InvoiceAmount   float64
	PaymentReceived Flag
	Status          string
	TypeOfJob       string
}

func (s *Service) AdminUpdate(ctx context.Context, id uint64, in AdminUpdateInput) error {
	if !ValidStatus(in.Status) {
		return invalidf("status %q is not a recognized status", in.Status)
	}
	if in.InvoiceAmount != 0 && !bool(in.InvoiceRaised) {
		return invalidf("invoice_amount requires invoice_raised")
	}
	if in.InvoiceAmount < 0 {
		return invalidf("invoice_amount must not be negative")
	}

	res := s.DB.WithContext(ctx).Model(&Job{}).Where("id = ?", id).
		Updates(map[string]any{
			"invoice_raised":   bool(in.InvoiceRaised),
			"invoice_amount":   in.InvoiceAmount,
			"payment_received": bool(in.PaymentReceived),
			"status":           in.Status,
			"type_of_job":      in.TypeOfJob,
			"updated_at":       time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DetailUpdateInput carries the delivery and payment fields from the
// follow-up form. The form-level contract requires every field.
type DetailUpdateInput struct {
	InvoiceRaised   Flag
	IsDelivered     Flag
	PaymentReceived Flag

	InvoiceNumber    string
	InvoiceAmount    float64
	PaymentMode      string
	PaymentReference string
	JobReceivedDate  time.Time
}

func (in *DetailUpdateInput) validate() error {
	in.InvoiceNumber = strings.TrimSpace(in.InvoiceNumber)
	in.PaymentMode = strings.TrimSpace(in.PaymentMode)
	in.PaymentReference = strings.TrimSpace(in.PaymentReference)

	if in.InvoiceNumber == "" {
		return invalidf("invoice_number is required")
	}
	if in.InvoiceAmount <= 0 {
		return invalidf("invoice_amount must be positive")
	}
	if in.PaymentMode == "" {
		return invalidf("payment_mode is required")
	}
	if in.PaymentReference == "" {
		return invalidf("payment_reference is required")
	}
	if in.JobReceivedDate.IsZero() {
		return invalidf("job_received_date is required")
	}
	if in.InvoiceAmount != 0 && !bool(in.InvoiceRaised) {
		return invalidf("invoice_amount requires invoice_raised")
	}
	return nil
}

func (s *Service) DetailUpdate(ctx context.Context, id uint64, in DetailUpdateInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	res := s.DB.WithContext(ctx).Model(&Job{}).Where("id = ?", id).
		Updates(map[string]any{
			"invoice_raised":    bool(in.InvoiceRaised),
			"is_delivered":      bool(in.IsDelivered),
			"payment_received":  bool(in.PaymentReceived),
			"invoice_number":    in.InvoiceNumber,
			"invoice_amount":    in.InvoiceAmount,
			"payment_mode":      in.PaymentMode,
			"payment_reference": in.PaymentReference,
			"job_received_date": in.JobReceivedDate,
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uint64) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthlyStat struct {
	Month         string `json:"month"` // YYYY-MM of job_received_date
	TotalJobs     int64  `json:"total_jobs"`
	CompletedJobs int64  `json:"completed_jobs"`
	InvoicedJobs  int64  `json:"invoiced_jobs"`
	PaidJobs      int64  `json:"paid_jobs"`
}

type Stats struct {
	StatusStats  []StatusCount `json:"status_stats"`
	MonthlyStats []MonthlyStat `json:"monthly_stats"`
}

// Stats aggregates counts by status plus per-month buckets for the last
// twelve months with data, newest first. The monthly rollup is computed
// in Go over a narrow column scan; month-formatting SQL is not portable
// across engines and row volumes here are office-scale.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	db := s.DB.WithContext(ctx)

	var byStatus []StatusCount
	if err := db.Model(&Job{}).
		Select("status, count(*) as count").
		Group("status").
		Order("status asc").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		JobReceivedDate time.Time
		Status          string
		InvoiceRaised   bool
		PaymentReceived bool
	}
	if err := db.Model(&Job{}).
		Select("job_received_date, status, invoice_raised, payment_received").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	buckets := map[string]*MonthlyStat{}
	for _, r := range rows {
		month := r.JobReceivedDate.Format("2006-01")
		b := buckets[month]
		if b == nil {
			b = &MonthlyStat{Month: month}
			buckets[month] = b
		}
		b.TotalJobs++
		if r.Status == StatusCompleted {
			b.CompletedJobs++
		}
		if r.InvoiceRaised {
			b.InvoicedJobs++
		}
		if r.PaymentReceived {
			b.PaidJobs++
		}
	}

	monthly := make([]MonthlyStat, 0, len(buckets))
	for _, b := range buckets {
		monthly = append(monthly, *b)
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month > monthly[j].Month })
	if len(monthly) > 12 {
		monthly = monthly[:12]
	}

	return &Stats{StatusStats: byStatus, MonthlyStats: monthly}, nil
}
