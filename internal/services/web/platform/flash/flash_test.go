package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteThenReadAndClear(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest("POST", "/lookup", nil), NoticeWarning("lookup.error.empty_term"))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}

	readReq := httptest.NewRequest("GET", "/", nil)
	readReq.AddCookie(cookies[0])
	readRec := httptest.NewRecorder()

	notice, ok := ReadAndClear(readRec, readReq)
	if !ok {
		t.Fatal("expected notice")
	}
	if notice.Kind != KindWarning || notice.Key != "lookup.error.empty_term" {
		t.Fatalf("notice = %+v", notice)
	}

	// Reading must also expire the cookie.
	var cleared bool
	for _, c := range readRec.Result().Cookies() {
		if c.Name == CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected flash cookie to be cleared")
	}
}

func TestReadAndClearWithoutCookie(t *testing.T) {
	if _, ok := ReadAndClear(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)); ok {
		t.Fatal("expected no notice")
	}
}

func TestWriteDropsInvalidNotice(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest("POST", "/", nil), Notice{Kind: "bogus", Key: "x"})
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("invalid kind should not be written")
	}

	rec = httptest.NewRecorder()
	Write(rec, httptest.NewRequest("POST", "/", nil), Notice{Kind: KindError, Key: "  "})
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("empty key should not be written")
	}
}

func TestReadAndClearRejectsTamperedCookie(t *testing.T) {
	readReq := httptest.NewRequest("GET", "/", nil)
	readReq.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!!"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), readReq); ok {
		t.Fatal("expected tampered cookie to be rejected")
	}
}
