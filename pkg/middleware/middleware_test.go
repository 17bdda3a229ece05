package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"golang.org/x/crypto/bcrypt"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims); ok {
			w.Header().Set("X-User", claims.UserName)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func newAuthenticator(t *testing.T, enabled bool) authenticating.Authenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("senha"), bcrypt.MinCost)
	assert.NoError(t, err)

	return authenticating.NewService(config.Auth{
		Enabled:      enabled,
		Username:     "operador",
		PasswordHash: string(hash),
		Secret:       "segredo",
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth := newAuthenticator(t, true)
	token, err := auth.LoginUser("operador", "senha")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		authenticator  authenticating.Authenticator
		path           string
		header         string
		expectedStatus int
		expectedUser   string
	}{
		{
			name:           "Autenticação desabilitada libera tudo",
			authenticator:  newAuthenticator(t, false),
			path:           "/v1/views",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Rota pública sem token",
			authenticator:  auth,
			path:           "/healthcheck",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem header Authorization",
			authenticator:  auth,
			path:           "/v1/views",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Header sem Bearer",
			authenticator:  auth,
			path:           "/v1/views",
			header:         token,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token inválido",
			authenticator:  auth,
			path:           "/v1/views",
			header:         "Bearer abc.def.ghi",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token válido",
			authenticator:  auth,
			path:           "/v1/views",
			header:         "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectedUser:   "operador",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.authenticator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedUser, rec.Header().Get("X-User"))
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/views", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/views", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/views", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/views", nil)
	rec := httptest.NewRecorder()

	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
