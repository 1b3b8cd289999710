package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
	"ledgerbook/internal/reports"
	"ledgerbook/internal/services"
	"ledgerbook/internal/tax"
	"ledgerbook/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- function-field mocks ---

type mockUserService struct {
	CreateUserFn     func(email, password, name string, userType models.UserType, organizationName, organizationID string) (*models.User, error)
	GetUserByEmailFn func(email string) (*models.User, error)
	GetUserByIDFn    func(id string) (*models.User, error)
	VerifyPasswordFn func(user *models.User, password string) bool
}

func (m *mockUserService) CreateUser(email, password, name string, userType models.UserType, organizationName, organizationID string) (*models.User, error) {
	return m.CreateUserFn(email, password, name, userType, organizationName, organizationID)
}
func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	return m.GetUserByEmailFn(email)
}
func (m *mockUserService) GetUserByID(id string) (*models.User, error) { return m.GetUserByIDFn(id) }
func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	return m.VerifyPasswordFn(user, password)
}

type mockCategoryService struct {
	CreateCategoryFn        func(userID, name string, categoryType models.CategoryType, color string) (*models.Category, error)
	SeedDefaultCategoriesFn func(userID string) error
	GetUserCategoriesFn     func(userID string, categoryType *models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByIDFn       func(userID, categoryID string) (*models.Category, error)
	UpdateCategoryFn        func(userID, categoryID, name, color string) (*models.Category, error)
	DeleteCategoryFn        func(userID, categoryID string) error
}

func (m *mockCategoryService) CreateCategory(userID, name string, categoryType models.CategoryType, color string) (*models.Category, error) {
	return m.CreateCategoryFn(userID, name, categoryType, color)
}
func (m *mockCategoryService) SeedDefaultCategories(userID string) error {
	return m.SeedDefaultCategoriesFn(userID)
}
func (m *mockCategoryService) GetUserCategories(userID string, categoryType *models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	return m.GetUserCategoriesFn(userID, categoryType, page)
}
func (m *mockCategoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	return m.GetCategoryByIDFn(userID, categoryID)
}
func (m *mockCategoryService) UpdateCategory(userID, categoryID, name, color string) (*models.Category, error) {
	return m.UpdateCategoryFn(userID, categoryID, name, color)
}
func (m *mockCategoryService) DeleteCategory(userID, categoryID string) error {
	return m.DeleteCategoryFn(userID, categoryID)
}

type mockTransactionService struct {
	CreateTransactionFn   func(userID string, input services.TransactionInput) (*models.Transaction, error)
	GetUserTransactionsFn func(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByIDFn  func(userID, transactionID string) (*models.Transaction, error)
	ReplaceTransactionFn  func(userID, transactionID string, input services.TransactionInput) (*models.Transaction, error)
	DeleteTransactionFn   func(userID, transactionID string) (*models.Transaction, error)
}

func (m *mockTransactionService) CreateTransaction(userID string, input services.TransactionInput) (*models.Transaction, error) {
	return m.CreateTransactionFn(userID, input)
}
func (m *mockTransactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	return m.GetUserTransactionsFn(userID, page, filter)
}
func (m *mockTransactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	return m.GetTransactionByIDFn(userID, transactionID)
}
func (m *mockTransactionService) ReplaceTransaction(userID, transactionID string, input services.TransactionInput) (*models.Transaction, error) {
	return m.ReplaceTransactionFn(userID, transactionID, input)
}
func (m *mockTransactionService) DeleteTransaction(userID, transactionID string) (*models.Transaction, error) {
	return m.DeleteTransactionFn(userID, transactionID)
}

type mockSettingsService struct {
	GetSettingsFn    func(userID string) (*models.CompanySettings, error)
	UpsertSettingsFn func(userID string, input services.SettingsInput) (*models.CompanySettings, error)
	TaxSettingsFn    func(userID string) (tax.Settings, error)
}

func (m *mockSettingsService) GetSettings(userID string) (*models.CompanySettings, error) {
	return m.GetSettingsFn(userID)
}
func (m *mockSettingsService) UpsertSettings(userID string, input services.SettingsInput) (*models.CompanySettings, error) {
	return m.UpsertSettingsFn(userID, input)
}
func (m *mockSettingsService) TaxSettings(userID string) (tax.Settings, error) {
	return m.TaxSettingsFn(userID)
}

type mockReportService struct {
	SummaryFn   func(userID string, from, to time.Time) (*reports.Summary, error)
	ExportCSVFn func(w io.Writer, userID string, from, to time.Time) error
}

func (m *mockReportService) Summary(userID string, from, to time.Time) (*reports.Summary, error) {
	return m.SummaryFn(userID, from, to)
}
func (m *mockReportService) ExportCSV(w io.Writer, userID string, from, to time.Time) error {
	return m.ExportCSVFn(w, userID, from, to)
}

// mockAuditService records calls without touching storage.
type mockAuditService struct {
	calls []string
}

func (m *mockAuditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	m.calls = append(m.calls, action)
}

// --- request helpers ---

// injectUserID simulates the auth middleware for handler tests.
func injectUserID(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Errorf("expected status %d, got %d (body: %s)", status, w.Code, w.Body.String())
	}
	var resp ErrorResponse
	parseJSON(t, w, &resp)
	if resp.Error.Code != code {
		t.Errorf("expected error code %q, got %q", code, resp.Error.Code)
	}
}

// --- tests ---

func TestRegister(t *testing.T) {
	newRouter := func(userService services.UserServicer, categoryService services.CategoryServicer) *gin.Engine {
		handler := NewAuthHandler(userService, categoryService)
		router := gin.New()
		router.POST("/register", handler.Register)
		return router
	}

	t.Run("success_seeds_default_categories", func(t *testing.T) {
		seeded := false
		userService := &mockUserService{
			CreateUserFn: func(email, password, name string, userType models.UserType, _, _ string) (*models.User, error) {
				return &models.User{
					Base:     models.Base{ID: "user-1"},
					Email:    email,
					Name:     name,
					UserType: userType,
				}, nil
			},
		}
		categoryService := &mockCategoryService{
			SeedDefaultCategoriesFn: func(userID string) error {
				if userID != "user-1" {
					t.Errorf("expected seeding for user-1, got %s", userID)
				}
				seeded = true
				return nil
			},
		}

		w := doRequest(newRouter(userService, categoryService), http.MethodPost, "/register", gin.H{
			"name":     "New User",
			"email":    "new@example.com",
			"password": "password123",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body: %s)", w.Code, w.Body.String())
		}
		if !seeded {
			t.Error("expected default categories to be seeded")
		}

		var resp struct {
			Token string `json:"token"`
			User  struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		}
		parseJSON(t, w, &resp)
		if resp.Token == "" {
			t.Error("expected a token in the response")
		}
		if resp.User.ID != "user-1" || resp.User.Email != "new@example.com" {
			t.Errorf("unexpected user payload: %+v", resp.User)
		}
	})

	t.Run("rejects_invalid_payload", func(t *testing.T) {
		router := newRouter(&mockUserService{}, &mockCategoryService{})

		// Missing password.
		w := doRequest(router, http.MethodPost, "/register", gin.H{
			"name":  "No Password",
			"email": "nopass@example.com",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")

		// Short password.
		w = doRequest(router, http.MethodPost, "/register", gin.H{
			"name":     "Short",
			"email":    "short@example.com",
			"password": "short",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("duplicate_email", func(t *testing.T) {
		userService := &mockUserService{
			CreateUserFn: func(_, _, _ string, _ models.UserType, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}

		w := doRequest(newRouter(userService, &mockCategoryService{}), http.MethodPost, "/register", gin.H{
			"name":     "Dup",
			"email":    "dup@example.com",
			"password": "password123",
		})
		assertErrorCode(t, w, http.StatusConflict, "DUPLICATE_EMAIL")
	})
}

func TestLogin(t *testing.T) {
	newRouter := func(userService services.UserServicer) *gin.Engine {
		handler := NewAuthHandler(userService, &mockCategoryService{})
		router := gin.New()
		router.POST("/login", handler.Login)
		return router
	}

	user := &models.User{Base: models.Base{ID: "user-1"}, Email: "login@example.com"}

	t.Run("success", func(t *testing.T) {
		userService := &mockUserService{
			GetUserByEmailFn: func(email string) (*models.User, error) { return user, nil },
			VerifyPasswordFn: func(_ *models.User, password string) bool { return password == "password123" },
		}

		w := doRequest(newRouter(userService), http.MethodPost, "/login", gin.H{
			"email":    "login@example.com",
			"password": "password123",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
		}
		var resp struct {
			Token string `json:"token"`
		}
		parseJSON(t, w, &resp)
		if resp.Token == "" {
			t.Error("expected a token in the response")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		userService := &mockUserService{
			GetUserByEmailFn: func(email string) (*models.User, error) { return user, nil },
			VerifyPasswordFn: func(_ *models.User, _ string) bool { return false },
		}

		w := doRequest(newRouter(userService), http.MethodPost, "/login", gin.H{
			"email":    "login@example.com",
			"password": "wrong",
		})
		assertErrorCode(t, w, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email_reports_invalid_credentials", func(t *testing.T) {
		userService := &mockUserService{
			GetUserByEmailFn: func(email string) (*models.User, error) { return nil, apperrors.ErrUserNotFound },
		}

		w := doRequest(newRouter(userService), http.MethodPost, "/login", gin.H{
			"email":    "ghost@example.com",
			"password": "password123",
		})
		// Never leak whether the account exists.
		assertErrorCode(t, w, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("returns_authenticated_user", func(t *testing.T) {
		userService := &mockUserService{
			GetUserByIDFn: func(id string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: id}, Email: "me@example.com"}, nil
			},
		}
		handler := NewAuthHandler(userService, &mockCategoryService{})
		router := gin.New()
		router.GET("/profile", injectUserID("user-1"), handler.GetProfile)

		w := doRequest(router, http.MethodGet, "/profile", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			User models.User `json:"user"`
		}
		parseJSON(t, w, &resp)
		if resp.User.ID != "user-1" {
			t.Errorf("expected user-1, got %s", resp.User.ID)
		}
	})

	t.Run("missing_auth_context", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockCategoryService{})
		router := gin.New()
		router.GET("/profile", handler.GetProfile)

		w := doRequest(router, http.MethodGet, "/profile", nil)
		assertErrorCode(t, w, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}
