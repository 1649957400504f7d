// Package pagerender centralizes page rendering for registry web surfaces.
package pagerender

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/tidemark/bluecarbon/internal/web/flash"
	webi18n "github.com/tidemark/bluecarbon/internal/web/i18n"
	webtemplates "github.com/tidemark/bluecarbon/internal/web/templates"
)

// Page describes a full page response.
type Page struct {
	Title      string
	StatusCode int
	Body       templ.Component
}

// WritePage renders a page inside the shared layout, consuming any pending
// flash notice. The body is buffered so render failures never emit a partial
// page.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = webtemplates.Empty()
	}

	printer, lang := webi18n.ResolveLocalizer(w, r)

	var notice *flash.Notice
	if pending, ok := flash.ReadAndClear(w, r); ok {
		notice = &pending
	}

	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
	}
	ctx = webi18n.WithPrinter(ctx, printer)
	ctx = templ.WithChildren(ctx, body)
	var buf bytes.Buffer
	if err := webtemplates.Layout(page.Title, lang, notice).Render(ctx, &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
