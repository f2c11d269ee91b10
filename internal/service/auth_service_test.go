package service

import (
	"testing"

	"homeschool_backend/internal/model"
	"homeschool_backend/internal/repository"
	"homeschool_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequiresIdentifier(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(repository.NewUserRepository(db))

	_, err := auth.Login("", model.RoleParent)
	assert.ErrorIs(t, err, util.ErrIdentifierRequired)
}

func TestLoginAutoRegistersParentByName(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(repository.NewUserRepository(db))

	user, err := auth.Login("Jane Doe", model.RoleParent)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, model.RoleParent, user.Role)
	require.NotNil(t, user.Email)
	assert.Equal(t, "jane.doe@lumina.edu", *user.Email)
}

func TestLoginAutoRegistersParentByEmail(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(repository.NewUserRepository(db))

	user, err := auth.Login("jane@example.com", model.RoleParent)
	require.NoError(t, err)
	require.NotNil(t, user.Email)
	assert.Equal(t, "jane@example.com", *user.Email)
	assert.Equal(t, "jane", user.Name)
}

func TestLoginIsIdempotent(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(repository.NewUserRepository(db))

	first, err := auth.Login("Jane Doe", model.RoleParent)
	require.NoError(t, err)

	again, err := auth.Login("Jane Doe", model.RoleParent)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	// 用合成邮箱再登录也收敛到同一行
	byEmail, err := auth.Login("jane.doe@lumina.edu", model.RoleParent)
	require.NoError(t, err)
	assert.Equal(t, first.ID, byEmail.ID)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStudentLoginConvergesOnEmailConflict(t *testing.T) {
	db := testDB(t)
	users := repository.NewUserRepository(db)
	auth := NewAuthService(users)

	parent, err := auth.Login("Sam", model.RoleParent)
	require.NoError(t, err)

	// 学生登录不会命中同名家长；会因邮箱冲突收敛到已有行，
	// 这与既有客户端的行为一致。
	student, err := auth.Login("Sam", model.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, student.ID)
}

func TestStudentLoginFindsRegisteredStudent(t *testing.T) {
	db := testDB(t)
	users := repository.NewUserRepository(db)
	auth := NewAuthService(users)

	parent, err := auth.Login("Jane", model.RoleParent)
	require.NoError(t, err)

	students := NewStudentService(users)
	sam, err := students.CreateStudent("Sam", "", "3", parent.ID)
	require.NoError(t, err)

	logged, err := auth.Login("Sam", model.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, sam.ID, logged.ID)
	require.NotNil(t, logged.GradeLevel)
	assert.Equal(t, "3", *logged.GradeLevel)
}
