package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
)

// In-memory stand-ins for the GORM repositories. They mirror the repository
// contracts exactly, including the not-found sentinels, so usecases can be
// exercised without a database.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate email %s", user.Email)
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type stubTaskRepo struct {
	tasks  map[int64]*entity.Task
	nextID int64
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[int64]*entity.Task), nextID: 1}
}

func cloneTask(t *entity.Task) *entity.Task {
	if t == nil {
		return nil
	}
	clone := *t
	if t.Description != nil {
		desc := *t.Description
		clone.Description = &desc
	}
	if t.OwnerID != nil {
		owner := *t.OwnerID
		clone.OwnerID = &owner
	}
	return &clone
}

func (r *stubTaskRepo) FindByID(_ context.Context, id int64) (*entity.Task, error) {
	if t, ok := r.tasks[id]; ok {
		return cloneTask(t), nil
	}
	return nil, repository.ErrTaskNotFound
}

func (r *stubTaskRepo) FindAllByOwner(_ context.Context, ownerID int64) ([]*entity.Task, error) {
	out := make([]*entity.Task, 0)
	for _, t := range r.tasks {
		if t.OwnerID != nil && *t.OwnerID == ownerID {
			out = append(out, cloneTask(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubTaskRepo) Create(_ context.Context, task *entity.Task) error {
	task.ID = r.nextID
	r.nextID++
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *entity.Task) error {
	stored, ok := r.tasks[task.ID]
	if !ok {
		return repository.ErrTaskNotFound
	}
	stored.Title = task.Title
	stored.Description = task.Description
	stored.IsRead = task.IsRead
	stored.UpdatedAt = time.Now()
	task.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

// stubHasher avoids bcrypt's cost in usecase tests. The "digest" is
// reversible on purpose: these tests assert orchestration, not crypto.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "digest:" + password, nil
}

func (stubHasher) Check(password, hash string) bool {
	return hash == "digest:"+password
}

// stubTokenService issues deterministic tokens for assertion.
type stubTokenService struct{}

func (stubTokenService) Issue(userID int64, email string) (string, error) {
	return tokenFor(userID, email), nil
}

func (stubTokenService) Verify(string) (*service.Claims, error) {
	return nil, domainerrors.ErrInvalidToken
}

// tokenFor builds the token shape stubTokenService issues.
func tokenFor(userID int64, email string) string {
	return fmt.Sprintf("token:%d:%s", userID, email)
}
