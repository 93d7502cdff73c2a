package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BeforeSave не использует tx, но сигнатура хука его требует
var mockTx *gorm.DB = nil

func TestUser_BeforeSave_HashesPassword(t *testing.T) {
	plainPassword := "mySecretPassword123"
	user := &User{Name: "Вадик", Email: "vadik@example.com", Password: plainPassword}

	err := user.BeforeSave(mockTx)

	require.NoError(t, err, "BeforeSave не должен возвращать ошибку")
	assert.NotEqual(t, plainPassword, user.Password, "Пароль должен быть изменён после хеширования")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(plainPassword)))
}

func TestUser_BeforeSave_SkipsAlreadyHashedPassword(t *testing.T) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("alreadyHashed"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &User{Email: "test@example.com", Password: string(hashedPassword)}
	originalHash := user.Password

	require.NoError(t, user.BeforeSave(mockTx))
	assert.Equal(t, originalHash, user.Password, "Уже хешированный пароль не должен изменяться")
}

func TestUser_BeforeSave_SkipsEmptyPassword(t *testing.T) {
	user := &User{Email: "test@example.com"}

	require.NoError(t, user.BeforeSave(mockTx))
	assert.Equal(t, "", user.Password)
}

func TestUser_CheckPassword(t *testing.T) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("correctPassword123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &User{Password: string(hashedPassword)}

	assert.True(t, user.CheckPassword("correctPassword123"))
	assert.False(t, user.CheckPassword("wrongPassword456"))
	assert.False(t, user.CheckPassword(""))
}

func TestUser_Credit(t *testing.T) {
	user := &User{Balance: 5000}

	user.Credit(1000)
	assert.Equal(t, int64(6000), user.Balance)

	// Отрицательные и нулевые суммы не меняют баланс
	user.Credit(0)
	user.Credit(-100)
	assert.Equal(t, int64(6000), user.Balance)
}

func TestUser_TableName(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
}
