package model

type UserRole string

const (
	RoleParent  UserRole = "parent"
	RoleStudent UserRole = "student"
)

// User is the root entity. Parents own students via ParentID; students carry a
// grade level. Email stays nullable so a student can exist without one.
// swagger:model User
type User struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      *string  `gorm:"size:255;unique" json:"email"`
	Name       string   `gorm:"size:100" json:"name"`
	Role       UserRole `gorm:"size:10;index" json:"role"`
	ParentID   *uint    `gorm:"index" json:"parentId,omitempty"`
	GradeLevel *string  `gorm:"size:10" json:"gradeLevel,omitempty"`
}

func (User) TableName() string {
	return "users"
}
