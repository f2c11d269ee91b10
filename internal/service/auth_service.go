package service

import (
	"errors"
	"strings"

	"homeschool_backend/internal/model"
	"homeschool_backend/internal/repository"
	"homeschool_backend/internal/util"
	"homeschool_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{UserRepo: userRepo}
}

// Login resolves an identifier to a user of the given role, auto-registering
// on first sight. Registration is idempotent: if the insert loses a race to a
// duplicate login, we converge to the row the winner created by re-fetching on
// the synthesized email.
func (s *AuthService) Login(identifier string, role model.UserRole) (*model.User, error) {
	if identifier == "" {
		return nil, util.ErrIdentifierRequired
	}

	user, err := s.UserRepo.FindByIdentifier(identifier, role)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 首次登录即注册
	email := identifier
	name := identifier
	if strings.Contains(identifier, "@") {
		name = strings.SplitN(identifier, "@", 2)[0]
	} else {
		email = util.SynthesizeEmail(identifier)
	}

	newUser := &model.User{
		Email: &email,
		Name:  name,
		Role:  role,
	}
	if err := s.UserRepo.Create(newUser); err != nil {
		logger.Log.Debug("auto-register insert failed, re-fetching by email",
			zap.String("email", email), zap.Error(err))
		return s.UserRepo.FindByEmail(email)
	}

	logger.Log.Info("auto-registered user",
		zap.String("name", name), zap.String("role", string(role)))
	return newUser, nil
}
