package service

import (
	"homeschool_backend/internal/model"
	"homeschool_backend/internal/repository"
	"homeschool_backend/internal/util"
	"homeschool_backend/pkg/logger"

	"go.uber.org/zap"
)

type StudentService struct {
	UserRepo *repository.UserRepository
}

func NewStudentService(userRepo *repository.UserRepository) *StudentService {
	return &StudentService{UserRepo: userRepo}
}

// CreateStudent registers a student under a parent. A missing email is
// synthesized from the name the same way login does it.
func (s *StudentService) CreateStudent(name, email, gradeLevel string, parentID uint) (*model.User, error) {
	if email == "" {
		email = util.SynthesizeEmail(name)
	}

	student := &model.User{
		Email:      &email,
		Name:       name,
		Role:       model.RoleStudent,
		ParentID:   &parentID,
		GradeLevel: &gradeLevel,
	}
	if err := s.UserRepo.Create(student); err != nil {
		// 约束冲突和脏数据对外统一折叠成一种错误
		logger.Log.Warn("student create failed",
			zap.String("name", name), zap.Error(err))
		return nil, util.ErrStudentExists
	}
	return student, nil
}

func (s *StudentService) ListStudents(parentID uint) ([]model.User, error) {
	return s.UserRepo.ListStudents(parentID)
}

func (s *StudentService) DeleteStudent(id uint) error {
	return s.UserRepo.DeleteStudent(id)
}
