package util

import (
	"testing"
	"time"

	"qudurat_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func testUser() *model.User {
	return &model.User{
		BaseModel: model.BaseModel{ID: 42},
		Name:      "سارة",
		Phone:     "0501234567",
		Role:      model.Student,
	}
}

func TestJWTRoundTrip(t *testing.T) {
	secret := "test-secret-test-secret-test-secret"

	token, err := GenerateJWT(testUser(), secret, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
	assert.Equal(t, "0501234567", claims.Phone)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), "secret-one", time.Hour)
	assert.NoError(t, err)

	_, err = ParseJWT(token, "secret-two")
	assert.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT(testUser(), "secret", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
