package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "schoolku_backend/internals/databases"
	userModel "schoolku_backend/internals/features/users/user/model"
)

var dbSeq atomic.Int64

// OpenTestDB membuka database sqlite in-memory yang sudah termigrasi.
// Setiap test dapat DSN sendiri supaya tidak saling bocor state.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// satu koneksi saja supaya in-memory DB tetap hidup
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// NewApp membangun fiber app dengan encoder yang sama seperti produksi.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})
}

// WithUser mensimulasikan AuthMiddleware dengan user yang sudah ter-resolve.
func WithUser(u *userModel.UserModel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", u.ID.String())
		c.Locals("user_role", u.Role)
		c.Locals("current_user", u)
		return c.Next()
	}
}

// CreateUser menyimpan user fixture dan mengembalikan recordnya.
func CreateUser(t *testing.T, db *gorm.DB, role string) *userModel.UserModel {
	t.Helper()

	n := dbSeq.Add(1)
	u := userModel.UserModel{
		FirstName:    "Test",
		LastName:     fmt.Sprintf("User%d", n),
		Email:        fmt.Sprintf("user%d@example.com", n),
		Phone:        fmt.Sprintf("+23480%08d", n),
		PasswordHash: "x",
		Role:         role,
		Birthday:     time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user fixture: %v", err)
	}
	return &u
}

// JSONRequest membungkus body jadi *http.Request siap untuk app.Test.
func JSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeBody membaca response JSON ke out.
func DecodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode body %q: %v", string(raw), err)
	}
}

// MustUUID parse string jadi uuid, fail kalau tidak valid.
func MustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()

	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse uuid %q: %v", s, err)
	}
	return id
}
