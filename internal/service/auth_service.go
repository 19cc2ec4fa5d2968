package service

import (
	"context"
	"errors"
	"time"

	"hrms-backend/internal/mailer"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/token"
	"hrms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- DTOs ---

// LoginDTO accepts either the email or the username in the Email field
type LoginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type UpdatePasswordDTO struct {
	Email       string `json:"email" binding:"required,email"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UserSummary is the user shape returned by login, without sensitive fields
type UserSummary struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Username       string     `json:"userName"`
	EmployeeName   string     `json:"employeeName"`
	EmployeeNumber string     `json:"employeeNumber"`
	Phone          string     `json:"phone"`
	Position       string     `json:"position"`
	Department     string     `json:"department"`
	ManagerID      *uuid.UUID `json:"manager,omitempty"`
	DateOfJoining  time.Time  `json:"dateOfJoining"`
	Role           string     `json:"role"`
	IsTempPassword bool       `json:"isTemPassword"`
	IsActive       bool       `json:"isActive"`
}

// LoginResult carries the user summary plus the flattened token pair
type LoginResult struct {
	User UserSummary `json:"user"`
	*token.Pair
}

// AuthService handles credential verification and the token lifecycle
type AuthService interface {
	Login(ctx context.Context, req LoginDTO) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*token.Pair, error)
	UpdatePassword(ctx context.Context, req UpdatePasswordDTO) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *token.Service
	mail   mailer.Mailer
	log    *logrus.Logger
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(users repository.UserRepository, tokens *token.Service, mail mailer.Mailer, log *logrus.Logger) AuthService {
	return &authService{users: users, tokens: tokens, mail: mail, log: log}
}

func (s *authService) Login(ctx context.Context, req LoginDTO) (*LoginResult, error) {
	user, err := s.users.GetByEmailOrUsername(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssueTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		s.log.WithError(err).WithField("userId", user.ID).Warn("failed to stamp last login")
	}

	return &LoginResult{
		User: UserSummary{
			ID:             user.ID,
			Email:          user.Email,
			Username:       user.Username,
			EmployeeName:   user.EmployeeName,
			EmployeeNumber: user.EmployeeNumber,
			Phone:          user.Phone,
			Position:       user.Position,
			Department:     user.Department,
			ManagerID:      user.ManagerID,
			DateOfJoining:  user.DateOfJoining,
			Role:           user.Role,
			IsTempPassword: user.IsTempPassword,
			IsActive:       user.IsActive,
		},
		Pair: pair,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. An access token
// presented here fails the kind check and collapses into ErrInvalidToken.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*token.Pair, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Kind != token.KindRefresh {
		return nil, apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}

	return s.tokens.IssueTokenPair(user)
}

// UpdatePassword is the self-service rotation: email plus the old password
// authenticate the change. Rotating clears the temporary-password flag.
func (s *authService) UpdatePassword(ctx context.Context, req UpdatePasswordDTO) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return nil, apperrors.ErrOldPasswordIncorrect
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.NewPassword)); err == nil {
		return nil, apperrors.ErrPasswordUnchanged
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.Password = string(hashed)
	user.IsTempPassword = false
	user.UpdatedBy = &user.ID // self-updated
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	go func(u model.User) {
		if err := s.mail.SendPasswordUpdated(u.Email, u.EmployeeName, u.Username); err != nil {
			s.log.WithError(err).WithField("userId", u.ID).Warn("password update email failed")
		}
	}(*user)

	return user, nil
}
