package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"careon/api-gateway/models"
	"careon/api-gateway/store"
)

// fakePageStore is an in-memory PageStore for handler tests.
type fakePageStore struct {
	pages      map[string]models.Page
	upserts    int
	deletes    int
	failLookup bool
}

func newFakePageStore() *fakePageStore {
	return &fakePageStore{pages: make(map[string]models.Page)}
}

func (f *fakePageStore) GetBySlug(slug string) (models.Page, error) {
	if f.failLookup {
		return models.Page{}, fmt.Errorf("fetch page %q: storage exploded", slug)
	}
	page, ok := f.pages[slug]
	if !ok {
		return models.Page{}, store.ErrNotFound
	}
	return page, nil
}

func (f *fakePageStore) ListAll() ([]models.Page, error) {
	if f.failLookup {
		return nil, fmt.Errorf("list pages: storage exploded")
	}
	pages := make([]models.Page, 0, len(f.pages))
	for _, p := range f.pages {
		pages = append(pages, p)
	}
	return pages, nil
}

func (f *fakePageStore) Upsert(slug, title string, blocks []models.Block) (models.Page, error) {
	f.upserts++
	page, ok := f.pages[slug]
	if !ok {
		page = models.Page{Slug: slug, CreatedAt: time.Now()}
	}
	page.Title = title
	page.Blocks = blocks
	page.UpdatedAt = time.Now()
	f.pages[slug] = page
	return page, nil
}

func (f *fakePageStore) DeleteByID(id string) error {
	f.deletes++
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newPageTestApp(pages store.PageStore) *fiber.App {
	h := NewApplicationHandler(quietLogger())
	h.Pages = pages

	app := fiber.New()
	app.Get("/api/pages", h.ListPages)
	app.Get("/api/pages/:slug", h.GetPage)
	app.Post("/api/pages", h.SavePage)
	return app
}

func jsonBody(t *testing.T, body interface{}) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(raw)
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func TestSavePageRejectsMissingFields(t *testing.T) {
	pages := newFakePageStore()
	app := newPageTestApp(pages)

	bodies := []map[string]interface{}{
		{"title": "Home", "blocks": []interface{}{}}, // no slug
		{"slug": "home", "blocks": []interface{}{}},  // no title
		{"slug": "home", "title": "Home"},            // no blocks
	}
	for i, body := range bodies {
		resp := postJSON(t, app, "/api/pages", body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d", i, resp.StatusCode)
		}
	}
	if pages.upserts != 0 {
		t.Fatalf("rejected saves must not reach the store, saw %d upserts", pages.upserts)
	}
}

func TestSavePageAllowsEmptyBlockList(t *testing.T) {
	pages := newFakePageStore()
	app := newPageTestApp(pages)

	resp := postJSON(t, app, "/api/pages", map[string]interface{}{
		"slug": "empty", "title": "Empty", "blocks": []interface{}{},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("an empty page is valid; expected 200, got %d", resp.StatusCode)
	}
	if pages.upserts != 1 {
		t.Fatalf("expected one upsert, got %d", pages.upserts)
	}
}

func TestSavePageRejectsUnknownBlockType(t *testing.T) {
	pages := newFakePageStore()
	app := newPageTestApp(pages)

	resp := postJSON(t, app, "/api/pages", map[string]interface{}{
		"slug":  "home",
		"title": "Home",
		"blocks": []map[string]interface{}{
			{"id": "b1", "type": "marquee", "content": map[string]interface{}{}},
		},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown block type must be rejected, got %d", resp.StatusCode)
	}
	if pages.upserts != 0 {
		t.Fatal("invalid blocks must not reach the store")
	}
}

func TestSaveThenGetRoundTrip(t *testing.T) {
	pages := newFakePageStore()
	app := newPageTestApp(pages)

	resp := postJSON(t, app, "/api/pages", map[string]interface{}{
		"slug":  "home",
		"title": "Home",
		"blocks": []map[string]interface{}{
			{"id": "b1", "type": "heading", "content": map[string]interface{}{"text": "Hi", "level": 1}},
		},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save: expected 200, got %d", resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/pages/home", nil)
	getResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", getResp.StatusCode)
	}

	var envelope struct {
		Success bool        `json:"success"`
		Data    models.Page `json:"data"`
	}
	if err := json.NewDecoder(getResp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected success=true")
	}
	if len(envelope.Data.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(envelope.Data.Blocks))
	}

	var heading models.HeadingContent
	if err := json.Unmarshal(envelope.Data.Blocks[0].Content, &heading); err != nil {
		t.Fatalf("decode heading: %v", err)
	}
	if heading.Text != "Hi" {
		t.Fatalf("expected heading text Hi, got %q", heading.Text)
	}
}

func TestSavePageIsIdempotentPerSlug(t *testing.T) {
	pages := newFakePageStore()
	app := newPageTestApp(pages)

	body := map[string]interface{}{
		"slug": "home", "title": "Home",
		"blocks": []map[string]interface{}{
			{"id": "b1", "type": "text", "content": map[string]interface{}{"text": "hello"}},
		},
	}
	for i := 0; i < 3; i++ {
		resp := postJSON(t, app, "/api/pages", body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("save %d: expected 200, got %d", i, resp.StatusCode)
		}
	}
	if len(pages.pages) != 1 {
		t.Fatalf("repeated saves must converge to one page, got %d", len(pages.pages))
	}
	if pages.upserts != 3 {
		t.Fatalf("expected 3 upsert calls, got %d", pages.upserts)
	}
}

func TestGetPageNotFoundVsStorageError(t *testing.T) {
	pages := newFakePageStore()
	app := newPageTestApp(pages)

	req := httptest.NewRequest(http.MethodGet, "/api/pages/nope", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("absent slug: expected 404, got %d", resp.StatusCode)
	}

	pages.failLookup = true
	req = httptest.NewRequest(http.MethodGet, "/api/pages/nope", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("storage failure: expected 500, got %d", resp.StatusCode)
	}
}
