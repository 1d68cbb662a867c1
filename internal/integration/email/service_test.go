package email

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
)

type stubQueueRepo struct {
	jobs []*entity.EmailJob
	keys map[string]bool
}

func newStubQueueRepo() *stubQueueRepo {
	return &stubQueueRepo{keys: map[string]bool{}}
}

func (s *stubQueueRepo) Create(ctx context.Context, job *entity.EmailJob) error {
	s.jobs = append(s.jobs, job)
	if job.DedupeKey != "" {
		s.keys[job.DedupeKey] = true
	}
	return nil
}

func (s *stubQueueRepo) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	return nil, nil
}

func (s *stubQueueRepo) Update(ctx context.Context, job *entity.EmailJob) error { return nil }

func (s *stubQueueRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	return nil, nil
}

func (s *stubQueueRepo) GetByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error) {
	return nil, nil
}

func (s *stubQueueRepo) ExistsByDedupeKey(ctx context.Context, key string) (bool, error) {
	return s.keys[key], nil
}

func (s *stubQueueRepo) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	return 0, nil
}

func TestQueueRentReminderEmail_Dedupes(t *testing.T) {
	repo := newStubQueueRepo()
	service := NewService(repo, "http://localhost:5173")

	input := adapter.QueueRentReminderInput{
		TenantEmail:  "joao@example.com",
		TenantName:   "Joao Silva",
		PropertyName: "Sunset House",
		Amount:       "650.00",
		DueDate:      "2026-03-05",
		DedupeKey:    "rent-reminder:abc:2026-03",
	}

	if err := service.QueueRentReminderEmail(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.QueueRentReminderEmail(context.Background(), input); err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}

	if len(repo.jobs) != 1 {
		t.Fatalf("expected 1 queued job after rerun, got %d", len(repo.jobs))
	}
	job := repo.jobs[0]
	if job.TemplateType != entity.TemplateRentReminder {
		t.Errorf("expected rent reminder template, got %s", job.TemplateType)
	}
	if job.DedupeKey != input.DedupeKey {
		t.Errorf("expected dedupe key carried onto the job, got %s", job.DedupeKey)
	}
}

func TestQueueLeaseExpiryEmail_Dedupes(t *testing.T) {
	repo := newStubQueueRepo()
	service := NewService(repo, "http://localhost:5173")

	input := adapter.QueueLeaseExpiryInput{
		UserEmail:    "owner@example.com",
		UserName:     "Alice",
		TenantName:   "Joao Silva",
		PropertyName: "Sunset House",
		EndDate:      "2026-03-20",
		DedupeKey:    "lease-expiry:abc",
	}

	if err := service.QueueLeaseExpiryEmail(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.QueueLeaseExpiryEmail(context.Background(), input); err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}

	if len(repo.jobs) != 1 {
		t.Fatalf("expected 1 queued job after rerun, got %d", len(repo.jobs))
	}
}

func TestQueuePasswordResetEmail_AlwaysQueues(t *testing.T) {
	repo := newStubQueueRepo()
	service := NewService(repo, "http://localhost:5173")

	input := adapter.QueuePasswordResetInput{
		UserEmail: "owner@example.com",
		UserName:  "Alice",
		ResetURL:  "http://localhost:5173/reset-password?token=abc",
		ExpiresIn: "1 hour",
	}

	if err := service.QueuePasswordResetEmail(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.QueuePasswordResetEmail(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.jobs) != 2 {
		t.Fatalf("expected password reset emails to never dedupe, got %d jobs", len(repo.jobs))
	}
	if repo.jobs[0].TemplateType != entity.TemplatePasswordReset {
		t.Errorf("expected password reset template, got %s", repo.jobs[0].TemplateType)
	}
	if repo.jobs[0].TemplateData["reset_url"] != input.ResetURL {
		t.Errorf("expected reset URL in template data, got %v", repo.jobs[0].TemplateData["reset_url"])
	}
}

func TestQueuePaymentReceiptEmail_Subject(t *testing.T) {
	repo := newStubQueueRepo()
	service := NewService(repo, "http://localhost:5173")

	err := service.QueuePaymentReceiptEmail(context.Background(), adapter.QueuePaymentReceiptInput{
		TenantEmail:  "joao@example.com",
		TenantName:   "Joao Silva",
		PropertyName: "Sunset House",
		Amount:       "650.00",
		PaymentDate:  "2026-03-05",
		Method:       "bank_transfer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(repo.jobs))
	}
	if repo.jobs[0].Subject != "Payment receipt - Sunset House" {
		t.Errorf("unexpected subject: %s", repo.jobs[0].Subject)
	}
}
