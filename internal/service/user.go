package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo     ports.UserRepo
	tokens   ports.TokenIssuer
	validate *validator.Validate
	cost     int
}

func NewUserService(repo ports.UserRepo, tokens ports.TokenIssuer, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:     repo,
		tokens:   tokens,
		validate: validator.New(),
		cost:     bcryptCost,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		FullName:       strings.TrimSpace(input.FullName),
		Email:          input.Email,
		PasswordHash:   string(hash),
		Image:          input.Image,
		Role:           domain.RoleUser,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}
	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

func (s *UserService) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *UserService) issue(user *domain.User) (*domain.AuthResult, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.AuthResult{Token: token, User: user}, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) StoreRecentCity(ctx context.Context, userID, city string) ([]string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", domain.ErrValidation)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	user.RememberCity(city)
	if err = s.repo.UpdateRecentCities(ctx, user.ID, user.RecentSearchedCities); err != nil {
		return nil, fmt.Errorf("update recent cities: %w", err)
	}

	return user.RecentSearchedCities, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: invalid fields: %s", domain.ErrValidation, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
}

// validateID rejects ids that cannot name a stored row.
func validateID(field, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid %s", domain.ErrValidation, field)
	}
	return nil
}
