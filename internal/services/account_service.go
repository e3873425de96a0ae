package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tirtha/internal/models/db_models"
	"tirtha/internal/models/request_models"
	"tirtha/internal/models/response_models"
	"tirtha/internal/repositories"
	"tirtha/pkg/i18n"
	"tirtha/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error

	GetProfile(ctx context.Context, userID string) (response_models.User, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (response_models.User, error)

	ListUsers(ctx context.Context, page, pageSize int) ([]response_models.User, error)
	AdminUpdateUser(ctx context.Context, id uuid.UUID, request request_models.AdminUpdateUserRequest) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	language := request.PreferredLanguage
	if language == "" {
		language = i18n.English
	}
	if !i18n.Supported(language) {
		return utils.ErrInvalidLanguage
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:             request.Email,
		PasswordHash:      hashedPassword,
		Role:              db_models.RoleUser,
		PreferredLanguage: language,
		Theme:             db_models.ThemeLight,
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (response_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return response_models.User{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.User{}, utils.ErrUserNotFound
	}
	return toUser(*user), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (response_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return response_models.User{}, utils.ErrDatabaseError
	}
	if user == nil {
		return response_models.User{}, utils.ErrUserNotFound
	}

	if request.PreferredLanguage != nil {
		if !i18n.Supported(*request.PreferredLanguage) {
			return response_models.User{}, utils.ErrInvalidLanguage
		}
		user.PreferredLanguage = *request.PreferredLanguage
	}
	if request.Theme != nil {
		theme := db_models.Theme(*request.Theme)
		if !theme.Valid() {
			return response_models.User{}, utils.ErrInvalidEnumValue
		}
		user.Theme = theme
	}
	if request.ProfilePhoto != nil {
		user.ProfilePhoto = request.ProfilePhoto
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error updating user: %v", err)
		return response_models.User{}, utils.ErrDatabaseError
	}
	return toUser(*user), nil
}

func (a *AccountService) ListUsers(ctx context.Context, page, pageSize int) ([]response_models.User, error) {
	users, err := a.userRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.User, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUser(user))
	}
	return responses, nil
}

func (a *AccountService) AdminUpdateUser(ctx context.Context, id uuid.UUID, request request_models.AdminUpdateUserRequest) error {
	user, err := a.userRepo.FindByID(ctx, id.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if request.Role != nil {
		if *request.Role != db_models.RoleUser && *request.Role != db_models.RoleAdmin {
			return utils.ErrInvalidEnumValue
		}
		user.Role = *request.Role
	}
	if request.PreferredLanguage != nil {
		if !i18n.Supported(*request.PreferredLanguage) {
			return utils.ErrInvalidLanguage
		}
		user.PreferredLanguage = *request.PreferredLanguage
	}
	if request.Theme != nil {
		theme := db_models.Theme(*request.Theme)
		if !theme.Valid() {
			return utils.ErrInvalidEnumValue
		}
		user.Theme = theme
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error updating user: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := a.userRepo.FindByID(ctx, id.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := a.userRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting user: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toUser(user db_models.User) response_models.User {
	return response_models.User{
		ID:                user.ID.String(),
		Email:             user.Email,
		Role:              user.Role,
		PreferredLanguage: user.PreferredLanguage,
		Theme:             string(user.Theme),
		ProfilePhoto:      user.ProfilePhoto,
	}
}
