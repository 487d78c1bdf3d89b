package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"volta-cms/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "this-is-a-test-jwt-secret-key-with-32-plus-chars"

func tokenTestService(expiresIn string) *Service {
	cfg := config.Config{
		JWTSecret:    testSecret,
		JWTExpiresIn: expiresIn,
	}
	return NewService(nil, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := tokenTestService("1h")

	token, expiresAt, err := svc.IssueToken("683cdb8aa96ad71e8e075bd1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "683cdb8aa96ad71e8e075bd1", userID)
}

func TestIssueTokenExpiryFollowsConfig(t *testing.T) {
	svc := tokenTestService("30m")

	_, expiresAt, err := svc.IssueToken("abc")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)
}

func TestIssueTokenBadDuration(t *testing.T) {
	svc := tokenTestService("soon")

	_, _, err := svc.IssueToken("abc")
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := tokenTestService("1h")

	now := time.Now().UTC()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "abc",
		"iat":     now.Add(-2 * time.Hour).Unix(),
		"exp":     now.Add(-time.Hour).Unix(),
	})
	raw, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.VerifyToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	svc := tokenTestService("1h")

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "abc",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	raw, err := other.SignedString([]byte("a-completely-different-secret-key-32-chars!!"))
	require.NoError(t, err)

	_, err = svc.VerifyToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenWrongAlgorithm(t *testing.T) {
	svc := tokenTestService("1h")

	// alg=none style tokens must never verify
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "abc",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.VerifyToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenMissingUserID(t *testing.T) {
	svc := tokenTestService("1h")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.VerifyToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenGarbage(t *testing.T) {
	svc := tokenTestService("1h")

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
