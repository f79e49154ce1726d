package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/report_admin/internal/models"
)

const testSecret = "test-secret"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTMiddleware(testSecret), func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, actor.Identity())
	})
	return r
}

func call(r http.Handler, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	token, _, err := IssueToken(testSecret, &models.Operator{ID: "op1", Username: "dana", DisplayName: "Dana"}, time.Now())
	require.NoError(t, err)

	w := call(newProtectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dana", w.Body.String())
}

func TestJWTMiddlewareRejects(t *testing.T) {
	expired, _, err := IssueToken(testSecret, &models.Operator{ID: "op1", Username: "dana"}, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	otherKey, _, err := IssueToken("another-secret", &models.Operator{ID: "op1", Username: "dana"}, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"malformed", "Bearer not-a-token"},
		{"expired", "Bearer " + expired},
		{"bad signature", "Bearer " + otherKey},
	}
	r := newProtectedRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, call(r, tt.header).Code)
		})
	}
}

func TestJWTMiddlewareRejectsDenylistedToken(t *testing.T) {
	token, expiresAt, err := IssueToken(testSecret, &models.Operator{ID: "op1", Username: "dana"}, time.Now())
	require.NoError(t, err)
	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	AddToDenylist(claims.ID, expiresAt)
	assert.True(t, IsTokenDenylisted(claims.ID))
	assert.Equal(t, http.StatusUnauthorized, call(newProtectedRouter(), "Bearer "+token).Code)
}

func TestParseTokenRejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		Username: "dana",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "x",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, unsigned)
	assert.Error(t, err)
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	_, _, err := IssueToken("", &models.Operator{Username: "dana"}, time.Now())
	assert.Error(t, err)
}
