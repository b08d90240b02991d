package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	app := fiber.New()

	var got Pagination
	app.Get("/items", func(c *fiber.Ctx) error {
		got = parsePagination(c, 20)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/items", 20, 0},
		{"explicit values", "/items?limit=5&offset=10", 5, 10},
		{"limit capped", "/items?limit=5000", maxPaginationLimit, 0},
		{"negative limit falls back", "/items?limit=-1", 20, 0},
		{"negative offset clamped", "/items?offset=-5", 20, 0},
		{"non-numeric ignored", "/items?limit=abc&offset=xyz", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
		})
	}
}

func TestParseID(t *testing.T) {
	s := &Server{}
	app := fiber.New()

	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	t.Run("valid ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/things/7", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("zero ID rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/things/0", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("non-numeric ID rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/things/abc", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	})
}

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param string
		want  string
	}{
		{"id", "ID"},
		{"userId", "user ID"},
		{"replyId", "reply ID"},
		{"commentId", "comment ID"},
		{"slug", "slug"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeParam(tt.param))
	}
}
