package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taxi-fleet-service/internal/domain/driver"
	xerrors "taxi-fleet-service/internal/pkg/errors"
	"taxi-fleet-service/internal/pkg/jwt"
	"taxi-fleet-service/internal/pkg/session"
	authService "taxi-fleet-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeDriverRepo struct {
	byLogin map[string]*driver.Driver
}

func (f *fakeDriverRepo) Create(ctx context.Context, d *driver.Driver) error  { return nil }
func (f *fakeDriverRepo) Update(ctx context.Context, d *driver.Driver) error  { return nil }
func (f *fakeDriverRepo) Delete(ctx context.Context, id int64) (bool, error)  { return false, nil }
func (f *fakeDriverRepo) GetAll(ctx context.Context) ([]driver.Driver, error) { return nil, nil }
func (f *fakeDriverRepo) GetByID(ctx context.Context, id int64) (*driver.Driver, error) {
	return nil, xerrors.ErrNotFound
}

func (f *fakeDriverRepo) FindByLogin(ctx context.Context, login string) (*driver.Driver, error) {
	d, ok := f.byLogin[login]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return d, nil
}

type fakeSessionStore struct{}

func (fakeSessionStore) Create(ctx context.Context, s *session.Data) error { return nil }
func (fakeSessionStore) Get(ctx context.Context, driverID int64, jti string) (*session.Data, error) {
	return &session.Data{DriverID: driverID, JTI: jti}, nil
}
func (fakeSessionStore) Delete(ctx context.Context, driverID int64, jti string) error { return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	repo := &fakeDriverRepo{byLogin: map[string]*driver.Driver{
		"bob": {ID: 7, Name: "Bob", Login: "bob", Password: string(hash)},
	}}
	manager := jwt.NewManager(jwt.Config{Secret: "test-secret", Issuer: "taxi-fleet-test", TTL: time.Hour})
	svc := authService.NewService(repo, manager, fakeSessionStore{}, zap.NewNop())

	handler := NewAuthHandler(svc, zap.NewNop())

	engine := gin.New()
	engine.POST("/auth/login", handler.Login)
	return engine
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"success", `{"login":"bob","password":"secret"}`, http.StatusOK},
		{"wrong password", `{"login":"bob","password":"wrong"}`, http.StatusUnauthorized},
		{"unknown user", `{"login":"nouser","password":"x"}`, http.StatusUnauthorized},
		{"missing fields", `{"login":"bob"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestLoginResponseOmitsPassword(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"login":"bob","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret") || strings.Contains(w.Body.String(), "password") {
		t.Errorf("response leaks password material: %s", w.Body.String())
	}
}
