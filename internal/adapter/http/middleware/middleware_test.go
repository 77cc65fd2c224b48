package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func identityRouter(secret string) (*gin.Engine, *[]*string) {
	var captured []*string
	router := gin.New()
	router.GET("/test", Identity(secret, zerolog.Nop()), func(c *gin.Context) {
		captured = append(captured, UserID(c))
		c.JSON(200, gin.H{"ok": true})
	})
	return router, &captured
}

func mintToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestIdentity_NoSecretConfigured(t *testing.T) {
	router, captured := identityRouter("")

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *captured, 1)
	assert.Nil(t, (*captured)[0])
}

func TestIdentity_NoHeaderIsAnonymous(t *testing.T) {
	router, captured := identityRouter("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *captured, 1)
	assert.Nil(t, (*captured)[0])
}

func TestIdentity_ValidTokenAttachesUser(t *testing.T) {
	router, captured := identityRouter("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "test-secret", "donor-42"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *captured, 1)
	require.NotNil(t, (*captured)[0])
	assert.Equal(t, "donor-42", *(*captured)[0])
}

func TestIdentity_InvalidTokenStaysAnonymous(t *testing.T) {
	router, captured := identityRouter("test-secret")

	// Signed with the wrong secret; the request must still succeed.
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, "other-secret", "donor-42"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *captured, 1)
	assert.Nil(t, (*captured)[0])
}

func TestRecovery_PanicRecovered(t *testing.T) {
	log := zerolog.Nop()

	router := gin.New()
	router.Use(Recovery(log))
	router.GET("/panic", func(c *gin.Context) {
		panic("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_001", resp["error_code"])
	assert.Equal(t, false, resp["ok"])
}

func TestMaxBodySize_RejectsOversizedBody(t *testing.T) {
	router := gin.New()
	router.Use(MaxBodySize(16))
	router.POST("/test", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"ok": false})
			return
		}
		c.JSON(200, gin.H{"ok": true})
	})

	big := bytes.Repeat([]byte("a"), 64)
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(big))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
