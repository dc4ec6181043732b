package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"creatoramp-backend/testutils"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestRegister_Success(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("user-uuid"))
	mock.ExpectCommit()

	h := New(gormDB)
	r := testutils.SetupTestRouter()
	r.POST("/register", h.Register)

	body, _ := json.Marshal(map[string]string{
		"email":    "creator@example.com",
		"password": "Password1",
		"username": "creator",
		"role":     "CREATOR",
	})

	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var result map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &result)
	assert.Equal(t, "creator@example.com", result["email"])
}

func TestRegister_WeakPassword(t *testing.T) {
	gormDB, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	h := New(gormDB)
	r := testutils.SetupTestRouter()
	r.POST("/register", h.Register)

	body, _ := json.Marshal(map[string]string{
		"email":    "creator@example.com",
		"password": "password1",
	})

	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "email"}).AddRow("user-1", "creator@example.com"))

	h := New(gormDB)
	r := testutils.SetupTestRouter()
	r.POST("/register", h.Register)

	body, _ := json.Marshal(map[string]string{
		"email":    "creator@example.com",
		"password": "Password1",
	})

	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "email", "password", "role"}).
			AddRow("user-1", "creator@example.com", string(hash), "CREATOR"))

	h := New(gormDB)
	r := testutils.SetupTestRouter()
	r.POST("/login", h.Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "creator@example.com",
		"password": "NotThePassword1",
	})

	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogin_Success(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	t.Setenv("JWT_SECRET", "test-secret")

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "email", "password", "role"}).
			AddRow("user-1", "creator@example.com", string(hash), "CREATOR"))

	h := New(gormDB)
	r := testutils.SetupTestRouter()
	r.POST("/login", h.Login)

	body, _ := json.Marshal(map[string]string{
		"email":    "creator@example.com",
		"password": "Password1",
	})

	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var result map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &result)
	assert.NotEmpty(t, result["token"])
}
