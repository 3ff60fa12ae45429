package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubJournal struct {
	counts map[string]int
	err    error
}

func (s stubJournal) Count(context.Context) (map[string]int, error) {
	return s.counts, s.err
}

func runDBCheck(t *testing.T, hs *Handlers) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/db-check", nil)
	hs.DBCheck(c)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return w, body
}

func TestDBCheckHidesDriverError(t *testing.T) {
	hs := &Handlers{Journal: stubJournal{err: errors.New("dial tcp 10.1.2.3:3306: connection refused")}}
	w, body := runDBCheck(t, hs)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "10.1.2.3") || body["message"] != "Journal query failed" {
		t.Fatalf("driver detail leaked: %s", w.Body.String())
	}
}

func TestDBCheckReportsCounts(t *testing.T) {
	hs := &Handlers{Journal: stubJournal{counts: map[string]int{"confirmed": 2}}}
	w, body := runDBCheck(t, hs)

	if w.Code != http.StatusOK || body["success"] != true {
		t.Fatalf("expected 200 success, got %d %s", w.Code, w.Body.String())
	}
}
