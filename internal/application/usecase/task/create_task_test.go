package task

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/adapter"
	"github.com/coliving-manager/backend/internal/domain/entity"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
)

type stubTaskRepo struct {
	tasks map[uuid.UUID]*entity.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: map[uuid.UUID]*entity.Task{}}
}

func (s *stubTaskRepo) Create(ctx context.Context, task *entity.Task) error {
	s.tasks[task.ID] = task
	return nil
}

func (s *stubTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	return s.tasks[id], nil
}

func (s *stubTaskRepo) FindByUserID(ctx context.Context, userID uuid.UUID, filter adapter.TaskFilter) ([]*entity.Task, error) {
	var result []*entity.Task
	for _, task := range s.tasks {
		if task.UserID == userID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (s *stubTaskRepo) Update(ctx context.Context, task *entity.Task) error {
	s.tasks[task.ID] = task
	return nil
}

func (s *stubTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.tasks, id)
	return nil
}

func TestCreateTask_DefaultsToMediumPriority(t *testing.T) {
	repo := newStubTaskRepo()
	useCase := NewCreateTaskUseCase(repo)

	output, err := useCase.Execute(context.Background(), CreateTaskInput{
		UserID: uuid.New(),
		Title:  "  Fix boiler  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Task.Title != "Fix boiler" {
		t.Errorf("expected trimmed title, got %q", output.Task.Title)
	}
	if output.Task.Priority != entity.TaskPriorityMedium {
		t.Errorf("expected medium priority, got %s", output.Task.Priority)
	}
	if output.Task.Status != entity.TaskStatusOpen {
		t.Errorf("expected open status, got %s", output.Task.Status)
	}
	if len(repo.tasks) != 1 {
		t.Errorf("expected 1 persisted task, got %d", len(repo.tasks))
	}
}

func TestCreateTask_TitleRequired(t *testing.T) {
	useCase := NewCreateTaskUseCase(newStubTaskRepo())

	_, err := useCase.Execute(context.Background(), CreateTaskInput{
		UserID: uuid.New(),
		Title:  "   ",
	})

	var taskErr *domainerror.TaskError
	if !errors.As(err, &taskErr) || taskErr.Code != domainerror.ErrCodeTaskTitleRequired {
		t.Errorf("expected task title required error, got %v", err)
	}
}

func TestCreateTask_InvalidPriority(t *testing.T) {
	useCase := NewCreateTaskUseCase(newStubTaskRepo())

	_, err := useCase.Execute(context.Background(), CreateTaskInput{
		UserID:   uuid.New(),
		Title:    "Fix boiler",
		Priority: entity.TaskPriority("urgent"),
	})

	var taskErr *domainerror.TaskError
	if !errors.As(err, &taskErr) || taskErr.Code != domainerror.ErrCodeInvalidTaskPriority {
		t.Errorf("expected invalid priority error, got %v", err)
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "trims and lower-cases",
			in:   []string{"  Plumbing ", "URGENT"},
			want: []string{"plumbing", "urgent"},
		},
		{
			name: "drops duplicates keeping first-seen order",
			in:   []string{"plumbing", "Urgent", "PLUMBING", "urgent"},
			want: []string{"plumbing", "urgent"},
		},
		{
			name: "drops empty tags",
			in:   []string{"", "  ", "garden"},
			want: []string{"garden"},
		},
		{
			name: "empty input",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeTags(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUpdateTask_MarkDoneRecordsCompletion(t *testing.T) {
	repo := newStubTaskRepo()
	userID := uuid.New()

	created, err := NewCreateTaskUseCase(repo).Execute(context.Background(), CreateTaskInput{
		UserID: userID,
		Title:  "Replace smoke detector",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := entity.TaskStatusDone
	output, err := NewUpdateTaskUseCase(repo).Execute(context.Background(), UpdateTaskInput{
		UserID: userID,
		TaskID: created.Task.ID,
		Status: &done,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Task.Status != entity.TaskStatusDone {
		t.Errorf("expected done status, got %s", output.Task.Status)
	}
	if output.Task.CompletedAt == nil {
		t.Error("expected completion time to be recorded")
	}

	open := entity.TaskStatusOpen
	output, err = NewUpdateTaskUseCase(repo).Execute(context.Background(), UpdateTaskInput{
		UserID: userID,
		TaskID: created.Task.ID,
		Status: &open,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Task.CompletedAt != nil {
		t.Error("expected completion time to be cleared on reopen")
	}
}

func TestUpdateTask_OwnedByAnotherUser(t *testing.T) {
	repo := newStubTaskRepo()

	created, err := NewCreateTaskUseCase(repo).Execute(context.Background(), CreateTaskInput{
		UserID: uuid.New(),
		Title:  "Repaint hallway",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	title := "Repaint hallway and stairs"
	_, err = NewUpdateTaskUseCase(repo).Execute(context.Background(), UpdateTaskInput{
		UserID: uuid.New(),
		TaskID: created.Task.ID,
		Title:  &title,
	})

	var taskErr *domainerror.TaskError
	if !errors.As(err, &taskErr) || taskErr.Code != domainerror.ErrCodeTaskNotFound {
		t.Errorf("expected task not found error, got %v", err)
	}
}
