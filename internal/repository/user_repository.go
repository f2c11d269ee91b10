package repository

import (
	"homeschool_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// FindByIdentifier resolves a login identifier. Students match by name only;
// parents match by name or email. Matches at most one row of that role.
func (r *UserRepository) FindByIdentifier(identifier string, role model.UserRole) (*model.User, error) {
	var user model.User
	q := r.DB.Where("role = ?", role)
	if role == model.RoleStudent {
		q = q.Where("name = ?", identifier)
	} else {
		q = q.Where("email = ? OR name = ?", identifier, identifier)
	}
	err := q.First(&user).Error
	return &user, err
}

func (r *UserRepository) ListStudents(parentID uint) ([]model.User, error) {
	var students []model.User
	err := r.DB.
		Where("parent_id = ? AND role = ?", parentID, model.RoleStudent).
		Find(&students).Error
	return students, err
}

// DeleteStudent removes the student's progress records and the user row in a
// single transaction so a failure cannot leave either side orphaned.
func (r *UserRepository) DeleteStudent(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).
			Delete(&model.ProgressRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND role = ?", id, model.RoleStudent).
			Delete(&model.User{}).Error
	})
}
