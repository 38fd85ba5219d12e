package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"poemhub/internal/webapp/dto"
	"poemhub/internal/webapp/middleware"
	"poemhub/internal/webapp/models"
	"poemhub/internal/webapp/service"
	"poemhub/internal/webapp/session"
	"poemhub/internal/webapp/templates"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// stubStore is an in-memory session.Store for handler tests
type stubStore struct {
	sess    *session.Session
	saved   *session.Session
	cleared bool
}

func (s *stubStore) Load(r *http.Request) *session.Session {
	if s.sess != nil {
		return s.sess
	}
	return &session.Session{}
}

func (s *stubStore) Save(w http.ResponseWriter, r *http.Request, sess *session.Session) error {
	s.saved = sess
	return nil
}

func (s *stubStore) Clear(w http.ResponseWriter, r *http.Request) error {
	s.cleared = true
	return nil
}

func setupRouter(t *testing.T, store session.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tmpl, err := templates.Load()
	assert.NoError(t, err)
	router.SetHTMLTemplate(tmpl)

	router.Use(middleware.LoadSession(store))
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// MockPoemService mocks the PoemService interface
type MockPoemService struct {
	mock.Mock
}

func (m *MockPoemService) CreatePoem(ctx context.Context, title, content string) (*models.Poem, error) {
	args := m.Called(ctx, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Poem), args.Error(1)
}

func (m *MockPoemService) UpdatePoem(ctx context.Context, id int64, title, content string) (*models.Poem, error) {
	args := m.Called(ctx, id, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Poem), args.Error(1)
}

func (m *MockPoemService) DeletePoem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPoemService) GetPoem(ctx context.Context, id int64) (*models.Poem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Poem), args.Error(1)
}

func (m *MockPoemService) ListPoems(ctx context.Context, sessionID string) ([]dto.PoemSummary, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PoemSummary), args.Error(1)
}

func (m *MockPoemService) GetPoemDetail(ctx context.Context, id int64, sessionID string) (*dto.PoemDetail, error) {
	args := m.Called(ctx, id, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PoemDetail), args.Error(1)
}

func TestIndex_RendersPoems(t *testing.T) {
	mockPoemService := new(MockPoemService)
	router := setupRouter(t, &stubStore{})
	NewPoemHandler(mockPoemService).RegisterRoutes(router)

	mockPoemService.On("ListPoems", mock.Anything, "").Return([]dto.PoemSummary{
		{ID: 1, Title: "Autumn", Likes: 2, Dislikes: 1, CreatedAt: "2025-10-01"},
	}, nil)

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Autumn")
	assert.Contains(t, w.Body.String(), "2025-10-01")
	mockPoemService.AssertExpectations(t)
}

func TestDetail_NotFound(t *testing.T) {
	mockPoemService := new(MockPoemService)
	router := setupRouter(t, &stubStore{})
	NewPoemHandler(mockPoemService).RegisterRoutes(router)

	mockPoemService.On("GetPoemDetail", mock.Anything, int64(42), "").
		Return(nil, service.ErrPoemNotFound)

	req, _ := http.NewRequest("GET", "/poems/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePoem_NotAuthorized(t *testing.T) {
	mockPoemService := new(MockPoemService)
	router := setupRouter(t, &stubStore{})
	NewPoemHandler(mockPoemService).RegisterRoutes(router)

	w := postForm(router, "/poems", url.Values{
		"title":   {"Autumn"},
		"content": {"Leaves drift down"},
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockPoemService.AssertNotCalled(t, "CreatePoem")
}

func TestCreatePoem_AsAdmin(t *testing.T) {
	mockPoemService := new(MockPoemService)
	store := &stubStore{sess: &session.Session{IsAdmin: true, Username: "poet"}}
	router := setupRouter(t, store)
	NewPoemHandler(mockPoemService).RegisterRoutes(router)

	mockPoemService.On("CreatePoem", mock.Anything, "Autumn", "Leaves drift down").
		Return(&models.Poem{ID: 1, Title: "Autumn"}, nil)

	w := postForm(router, "/poems", url.Values{
		"title":   {"Autumn"},
		"content": {"Leaves drift down"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	mockPoemService.AssertExpectations(t)
}

func TestCreatePoem_MissingFields(t *testing.T) {
	mockPoemService := new(MockPoemService)
	store := &stubStore{sess: &session.Session{IsAdmin: true}}
	router := setupRouter(t, store)
	NewPoemHandler(mockPoemService).RegisterRoutes(router)

	w := postForm(router, "/poems", url.Values{"title": {"Autumn"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockPoemService.AssertNotCalled(t, "CreatePoem")
}

func TestEditForm_RedirectsAnonymousToLogin(t *testing.T) {
	mockPoemService := new(MockPoemService)
	router := setupRouter(t, &stubStore{})
	NewPoemHandler(mockPoemService).RegisterRoutes(router)

	req, _ := http.NewRequest("GET", "/poems/1/edit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	mockPoemService.AssertNotCalled(t, "GetPoem")
}

func TestDeletePoem_AsAdmin(t *testing.T) {
	mockPoemService := new(MockPoemService)
	store := &stubStore{sess: &session.Session{IsAdmin: true}}
	router := setupRouter(t, store)
	NewPoemHandler(mockPoemService).RegisterRoutes(router)

	mockPoemService.On("DeletePoem", mock.Anything, int64(1)).Return(nil)

	w := postForm(router, "/poems/1/delete", url.Values{})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	mockPoemService.AssertExpectations(t)
}
