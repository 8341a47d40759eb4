package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/oakleafmed/medterm/internal/services/web/platform/flash"
	"github.com/oakleafmed/medterm/internal/services/web/platform/htmx"
)

func postLookup(t *testing.T, handler http.Handler, term string, hx bool) *httptest.ResponseRecorder {
	t.Helper()
	return postLookupAs(t, handler, "", term, hx)
}

func postLookupAs(t *testing.T, handler http.Handler, client, term string, hx bool) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"term": {term}}
	req := httptest.NewRequest(http.MethodPost, "/lookup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if client != "" {
		req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: client})
	}
	if hx {
		req.Header.Set(htmx.RequestHeaderKey, "true")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLookupPageRenders(t *testing.T) {
	handler := NewHandler(gatewayFunc(func(context.Context, string) (string, error) {
		return "", errors.New("unused")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<title>MedTerm | Medical Terminology Explainer</title>",
		`hx-post="/lookup"`,
		`hx-sync="this:drop"`,
		`hx-indicator="#lookup-loading"`,
		`hx-disabled-elt="#lookup-input, #lookup-submit"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	for _, term := range ExampleTerms {
		if !strings.Contains(body, `data-term="`+term+`"`) {
			t.Errorf("page missing example chip for %q", term)
		}
	}
	if len(ExampleTerms) != 8 {
		t.Fatalf("expected 8 example terms, got %d", len(ExampleTerms))
	}
}

func TestLookupPageSetsClientCookie(t *testing.T) {
	handler := NewHandler(gatewayFunc(func(context.Context, string) (string, error) {
		return "", errors.New("unused")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == ClientCookieName {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected client cookie to be set")
	}

	// A request that already carries the cookie keeps its identity.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == ClientCookieName && c.Value != cookie.Value {
			t.Fatalf("client identity changed: %q -> %q", cookie.Value, c.Value)
		}
	}
}

func TestLookupPageUnknownPath(t *testing.T) {
	handler := NewHandler(gatewayFunc(func(context.Context, string) (string, error) {
		return "", errors.New("unused")
	}))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestLookupSubmitHTMXSuccess(t *testing.T) {
	handler := NewHandler(gatewayFunc(func(_ context.Context, term string) (string, error) {
		if term != "Anemia" {
			t.Errorf("gateway received %q", term)
		}
		return "A shortage of red blood cells.", nil
	}))

	rec := postLookup(t, handler, "  Anemia ", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "What &#34;Anemia&#34; means") {
		t.Errorf("fragment missing result heading: %s", body)
	}
	if !strings.Contains(body, "A shortage of red blood cells.") {
		t.Error("fragment missing explanation")
	}
	if strings.Contains(body, "<html") {
		t.Error("htmx response should be a fragment, not a full page")
	}
}

func TestLookupSubmitFullPageSuccess(t *testing.T) {
	handler := NewHandler(gatewayFunc(func(context.Context, string) (string, error) {
		return "Swelling caused by trapped fluid.", nil
	}))

	rec := postLookup(t, handler, "Edema", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<html") {
		t.Error("non-htmx response should be a full page")
	}
	if !strings.Contains(body, "Swelling caused by trapped fluid.") {
		t.Error("page missing explanation")
	}
	if !strings.Contains(body, `value="Edema"`) {
		t.Error("page did not keep submitted term in the input")
	}
}

func TestLookupSubmitEmptyTermHTMX(t *testing.T) {
	handler := NewHandler(gatewayFunc(func(context.Context, string) (string, error) {
		t.Fatal("gateway should not be called")
		return "", nil
	}))

	rec := postLookup(t, handler, "   ", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please enter a medical term.") {
		t.Error("missing empty-term notice")
	}
	if !strings.Contains(rec.Body.String(), "alert-warning") {
		t.Error("empty-term notice should be a warning")
	}
}

func TestLookupSubmitEmptyTermRedirects(t *testing.T) {
	handler := NewHandler(gatewayFunc(func(context.Context, string) (string, error) {
		t.Fatal("gateway should not be called")
		return "", nil
	}))

	rec := postLookup(t, handler, "", false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/" {
		t.Errorf("Location = %q", got)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("flash cookie not set")
	}

	// The follow-up page render surfaces the notice as a toast.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	follow := httptest.NewRecorder()
	handler.ServeHTTP(follow, req)
	if !strings.Contains(follow.Body.String(), "Please enter a medical term.") {
		t.Error("redirected page missing notice")
	}
}

func TestLookupSubmitSecondClientNotBlocked(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	handler := NewHandler(gatewayFunc(func(_ context.Context, term string) (string, error) {
		if term == "Anemia" {
			close(started)
			<-release
		}
		return "explained " + term, nil
	}))

	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		firstDone <- postLookupAs(t, handler, "client-a", "Anemia", true)
	}()

	// While client-a's lookup is held open, an unrelated client's first
	// submission must reach the backend and render its explanation.
	<-started
	second := postLookupAs(t, handler, "client-b", "Edema", true)
	if second.Code != http.StatusOK {
		t.Fatalf("second client status = %d", second.Code)
	}
	if !strings.Contains(second.Body.String(), "explained Edema") {
		t.Errorf("second client missing explanation: %s", second.Body.String())
	}
	if strings.Contains(second.Body.String(), "already in progress") {
		t.Error("second client was rejected by another client's lookup")
	}

	close(release)
	first := <-firstDone
	if !strings.Contains(first.Body.String(), "explained Anemia") {
		t.Errorf("first client missing explanation: %s", first.Body.String())
	}
}

func TestLookupSubmitSameClientOverlapRejected(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	handler := NewHandler(gatewayFunc(func(_ context.Context, term string) (string, error) {
		if term == "Anemia" {
			close(started)
			<-release
		}
		return "explained " + term, nil
	}))

	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		firstDone <- postLookupAs(t, handler, "client-a", "Anemia", true)
	}()

	<-started
	overlap := postLookupAs(t, handler, "client-a", "Edema", true)
	if !strings.Contains(overlap.Body.String(), "A lookup is already in progress.") {
		t.Errorf("overlap missing in-flight notice: %s", overlap.Body.String())
	}

	close(release)
	<-firstDone
}

func TestLookupSubmitBackendFailure(t *testing.T) {
	handler := NewHandler(gatewayFunc(func(context.Context, string) (string, error) {
		return "", errors.New("backend unavailable")
	}))

	rec := postLookup(t, handler, "Dyspnea", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "alert-error") {
		t.Error("backend failure should render an error toast")
	}
	if strings.Contains(body, "backend unavailable") {
		t.Error("raw backend error leaked to the page")
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler := NewHandler(gatewayFunc(func(context.Context, string) (string, error) {
		return "", nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
