package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authModel "schoolku_backend/internals/features/users/auth/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
)

// IssueAccessToken membuat access token HS256 dengan sub = user id
// dan jti unik (dipakai untuk revocation).
func IssueAccessToken(user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"jti":  uuid.NewString(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(configs.AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// ParseAccessToken memverifikasi signature + expiry dan mengembalikan claims.
func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// claims tetap dikembalikan supaya revoke token expired bisa baca jti
			return claims, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tok.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// VerifyAccessToken = parse + cek blacklist. Token yang jti-nya sudah
// di-revoke ditolak walaupun signature/expiry masih valid.
func VerifyAccessToken(db *gorm.DB, tokenString string) (jwt.MapClaims, error) {
	claims, err := ParseAccessToken(tokenString)
	if err != nil {
		return nil, err
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil, ErrTokenInvalid
	}
	revoked, err := authModel.IsJtiBlacklisted(db, jti)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// RevokeToken menandai jti token sebagai revoked.
// Token yang sudah expired pun tetap dicatat (idempotent secara efek).
func RevokeToken(db *gorm.DB, tokenString string) error {
	claims, err := ParseAccessToken(tokenString)
	if err != nil && !errors.Is(err, ErrTokenExpired) {
		return err
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return ErrTokenInvalid
	}
	return db.Create(&authModel.RevokedTokenModel{
		Jti:         jti,
		DateRevoked: time.Now().UTC(),
	}).Error
}

// SubjectFromClaims mengambil user id dari claim "sub".
func SubjectFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return id, nil
}
