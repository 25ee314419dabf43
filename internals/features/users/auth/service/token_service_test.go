package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/testutil"
)

func setTestSecret(t *testing.T) {
	t.Helper()
	prevSecret, prevTTL := configs.JWTSecret, configs.AccessTokenTTL
	configs.JWTSecret = "unit-test-secret"
	configs.AccessTokenTTL = time.Hour
	t.Cleanup(func() {
		configs.JWTSecret = prevSecret
		configs.AccessTokenTTL = prevTTL
	})
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	setTestSecret(t)
	db := testutil.OpenTestDB(t)
	user := testutil.CreateUser(t, db, constants.RoleAdmin)

	token, err := IssueAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyAccessToken(db, token)
	require.NoError(t, err)

	id, err := SubjectFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, constants.RoleAdmin, claims["role"])
	assert.NotEmpty(t, claims["jti"])
}

func TestVerifyAccessToken_RevokedIsRejected(t *testing.T) {
	setTestSecret(t)
	db := testutil.OpenTestDB(t)
	user := testutil.CreateUser(t, db, constants.RoleStudent)

	token, err := IssueAccessToken(user)
	require.NoError(t, err)

	require.NoError(t, RevokeToken(db, token))

	// signature + expiry masih valid, tapi jti sudah masuk blacklist
	_, err = VerifyAccessToken(db, token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestVerifyAccessToken_GarbageIsInvalid(t *testing.T) {
	setTestSecret(t)
	db := testutil.OpenTestDB(t)

	_, err := VerifyAccessToken(db, "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseAccessToken_ExpiredKeepsClaims(t *testing.T) {
	setTestSecret(t)

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"jti": uuid.NewString(),
		"iat": now.Add(-2 * time.Hour).Unix(),
		"exp": now.Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)

	got, err := ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	// claims tetap bisa dibaca supaya logout token expired mencatat jti
	require.NotNil(t, got)
	assert.Equal(t, claims["jti"], got["jti"])
}

func TestRevokeToken_ExpiredTokenStillRecorded(t *testing.T) {
	setTestSecret(t)
	db := testutil.OpenTestDB(t)

	now := time.Now().UTC()
	jti := uuid.NewString()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
		"jti": jti,
		"exp": now.Add(-time.Minute).Unix(),
	}).SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)

	require.NoError(t, RevokeToken(db, token))

	var count int64
	require.NoError(t, db.Table("revoked_tokens").Where("jti = ?", jti).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
