// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"time"

	"chatai-be/internal/dto"
	"chatai-be/internal/entity"
	"chatai-be/internal/repository/specification"
	"chatai-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, expiryMinutes int) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
		tokenTTL:   time.Duration(expiryMinutes) * time.Minute,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.lookupUser(ctx, uow, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user":    user.Email,
		"user_id": user.Id.String(),
		"name":    user.Name,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: signedToken,
		User: dto.UserDTO{
			Id:       user.Id.String(),
			Name:     user.Name,
			Email:    user.Email,
			Sector:   user.Sector,
			Position: user.Position,
		},
	}, nil
}

// lookupUser keeps the legacy resolution order: exact email first, then a
// case-insensitive substring match on the display name. The name fallback is
// a usability compromise carried over from the previous system.
func (s *authService) lookupUser(ctx context.Context, uow unitofwork.UnitOfWork, username string) (*entity.User, error) {
	users := uow.UserRepository()

	user, err := users.FindOne(ctx, specification.ByEmail{Email: username}, specification.NotDeleted{})
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	return users.FindOne(ctx, specification.ByNameLike{Name: username}, specification.NotDeleted{})
}
