package usecase

import (
	"context"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

// UserService handles account creation and credential checks.
type UserService struct {
	users *repository.UsersRepo
}

func NewUserService(users *repository.UsersRepo) *UserService {
	return &UserService{users: users}
}

// CreateUser registers a new account with a hashed password.
func (svc *UserService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := svc.users.FindUserByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrUserExists
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		utils.TrackError("auth", "password_hash_failed")
		return nil, err
	}

	user.UserID = utils.GenerateID()
	user.Password = hashed
	user.CreatedAt = time.Now()

	if err := svc.users.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and records the login device.
func (svc *UserService) Authenticate(ctx context.Context, username, password, userAgent string) (*model.User, error) {
	user, err := svc.users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		utils.TrackError("auth", "invalid_credentials")
		return nil, model.ErrInvalidCredentials
	}

	if err := svc.users.RecordLogin(ctx, user.UserID, utils.DeviceInfo(userAgent)); err != nil {
		// Login metadata is best effort, the login itself succeeded.
		utils.TrackError("database", "record_login_failed")
	}
	return user, nil
}

func (svc *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.users.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrNotFound
	}
	return user, nil
}
