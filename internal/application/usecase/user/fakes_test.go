package user

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[uuid.UUID]*entity.User{}}
}

func (f *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}
	return user, nil
}

func (f *fakeUserRepository) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepository) CountByRole(_ context.Context, role entity.UserRole) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepository) List(_ context.Context, params adapter.UserListParams) (*adapter.UserListResult, error) {
	visible := map[entity.UserRole]bool{}
	for _, role := range params.Roles {
		visible[role] = true
	}
	users := make([]*entity.User, 0)
	for _, user := range f.users {
		if !visible[user.Role] {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(user.FullName), strings.ToLower(params.Search)) {
			continue
		}
		users = append(users, user)
	}
	return &adapter.UserListResult{Users: users, Total: int64(len(users)), TotalPages: 1}, nil
}

func (f *fakeUserRepository) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

type fakePasswordService struct{}

func (fakePasswordService) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}
