package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseToken(t *testing.T) {
	valid, err := GenerateToken(secret, 7, time.Hour)
	require.NoError(t, err)

	noExpiry, err := GenerateToken(secret, 7, 0)
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString(secret)
	require.NoError(t, err)

	otherSecret, err := GenerateToken([]byte("someone-else"), 7, time.Hour)
	require.NoError(t, err)

	noSubject, err := GenerateToken(secret, 0, time.Hour)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: 7}).SignedString(secret)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid", token: valid},
		{name: "no expiry", token: noExpiry},
		{name: "expired", token: expired, wantErr: true},
		{name: "wrong secret", token: otherSecret, wantErr: true},
		{name: "missing subject", token: noSubject, wantErr: true},
		{name: "unexpected algorithm", token: hs512, wantErr: true},
		{name: "garbage", token: "not.a.token", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := ParseToken(secret, tc.token)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(7), claims.UserID)
		})
	}
}
