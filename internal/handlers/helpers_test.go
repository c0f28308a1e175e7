package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/middleware"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/session"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/upstream"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// console wires the full route table against a fake upstream, mirroring
// the wiring in main.
type console struct {
	router *gin.Engine
	store  *session.Store
}

func newConsole(t *testing.T, upstreamHandler http.Handler) *console {
	t.Helper()

	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(upstreamHandler)
	t.Cleanup(srv.Close)
	client := upstream.New(srv.URL, 5*time.Second, store)

	restaurantView := NewRestaurantView(client)
	subcategoriesView := NewSubcategoriesView(client)
	menuItemsView := NewMenuItemsView(client)
	ordersView := NewOrdersView(client)

	r := gin.New()
	r.POST("/signin", SignIn(client))
	r.POST("/signout", SignOut(client))

	admin := r.Group("/")
	admin.Use(middleware.RequireSession(store))
	{
		admin.GET("/dashboard", Dashboard(client))
		admin.GET("/dashboard/all", DashboardAll(client))

		admin.GET("/restaurant", restaurantView.Get())
		admin.PUT("/restaurant", restaurantView.Update())
		admin.GET("/restaurant/edit", restaurantView.Edit())
		admin.POST("/restaurant/edit", restaurantView.OpenEdit())
		admin.DELETE("/restaurant/edit", restaurantView.CloseEdit())

		admin.GET("/subcategories", subcategoriesView.List())
		admin.POST("/subcategories", subcategoriesView.Create())
		admin.GET("/subcategories/edit", subcategoriesView.Edit())
		admin.POST("/subcategories/:id/edit", subcategoriesView.OpenEdit())
		admin.PUT("/subcategories/:id", subcategoriesView.Update())
		admin.DELETE("/subcategories/:id", subcategoriesView.Delete())

		admin.GET("/menuitems", menuItemsView.List())
		admin.POST("/menuitems", menuItemsView.Create())
		admin.GET("/menuitems/edit", menuItemsView.Edit())
		admin.POST("/menuitems/:id/edit", menuItemsView.OpenEdit())
		admin.PUT("/menuitems/:id", menuItemsView.Update())
		admin.DELETE("/menuitems/:id", menuItemsView.Delete())

		admin.GET("/orders", ordersView.List())
		admin.PATCH("/orders/:id/status", ordersView.UpdateStatus())
		admin.PATCH("/orders/:id/payment", ordersView.UpdatePayment())
		admin.DELETE("/orders/:id", ordersView.Delete())
	}

	return &console{router: r, store: store}
}

func (c *console) signIn(t *testing.T) {
	t.Helper()
	if err := c.store.Save(session.Session{Token: "abc"}); err != nil {
		t.Fatal(err)
	}
}

func (c *console) do(t *testing.T, method, target, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c *console) doJSON(t *testing.T, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return c.do(t, method, target, "application/json", bytes.NewReader(body))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("cannot decode response %q: %v", w.Body.String(), err)
	}
}

func multipartBody(t *testing.T, fields map[string]string) (io.Reader, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf, w.FormDataContentType()
}

// waitForDraft polls the edit endpoint until the debounced open lands.
func (c *console) waitForDraft(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		w := c.do(t, http.MethodGet, target, "", nil)
		if w.Code == http.StatusOK {
			return w
		}
		if time.Now().After(deadline) {
			t.Fatalf("edit draft never opened, last status %d", w.Code)
		}
		time.Sleep(20 * time.Millisecond)
	}
}
