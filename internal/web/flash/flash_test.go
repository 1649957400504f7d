package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func carryCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest("GET", "/", nil)
	for _, cookie := range w.Result().Cookies() {
		r.AddCookie(cookie)
	}
	return r
}

func TestWriteThenReadAndClear(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	Write(w, Success("record verified"))

	next := httptest.NewRecorder()
	notice, ok := ReadAndClear(next, carryCookies(t, w))
	if !ok {
		t.Fatal("notice not found after write")
	}
	if notice.Kind != KindSuccess || notice.Message != "record verified" {
		t.Errorf("notice = %+v", notice)
	}

	var cleared bool
	for _, cookie := range next.Result().Cookies() {
		if cookie.Name == CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie was not expired on read")
	}
}

func TestReadAndClearWithoutCookie(t *testing.T) {
	t.Parallel()
	if _, ok := ReadAndClear(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)); ok {
		t.Error("found notice on a request without the cookie")
	}
}

func TestWriteSkipsEmptyMessage(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	Write(w, Info("   "))
	if len(w.Result().Cookies()) != 0 {
		t.Error("blank notice produced a cookie")
	}
}

func TestDecodeNormalizesUnknownKind(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	Write(w, Notice{Kind: Kind("shout"), Message: "hello"})

	notice, ok := ReadAndClear(httptest.NewRecorder(), carryCookies(t, w))
	if !ok {
		t.Fatal("notice not found")
	}
	if notice.Kind != KindInfo {
		t.Errorf("kind = %q, want info fallback", notice.Kind)
	}
}

func TestReadAndClearRejectsGarbage(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!!"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), r); ok {
		t.Error("garbage cookie decoded to a notice")
	}
}
