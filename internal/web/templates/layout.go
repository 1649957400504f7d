// Package templates holds the shared page chrome for registry web surfaces.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/tidemark/bluecarbon/internal/web/flash"
)

const baseStyles = `body{font-family:sans-serif;max-width:60rem;margin:2rem auto;padding:0 1rem;color:#1a2b32}
h1{color:#145a4a}
table{border-collapse:collapse;width:100%}
th,td{border:1px solid #c5d4d0;padding:.4rem .6rem;text-align:left}
th{background:#e4efec}
form{margin:1rem 0;padding:1rem;border:1px solid #c5d4d0;border-radius:4px}
label{display:block;margin:.4rem 0 .1rem}
.notice{padding:.6rem 1rem;border-radius:4px;margin:1rem 0}
.notice-success{background:#dcf2e3;border:1px solid #4c9a6d}
.notice-info{background:#e0ecf5;border:1px solid #5585a8}
.notice-error{background:#f7dfdc;border:1px solid #b05c50}
nav a{margin-right:1rem}`

// Layout renders the full page shell around the supplied children.
func Layout(title string, lang string, notice *flash.Notice) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if lang == "" {
			lang = "en"
		}
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><style>%s</style></head><body>`,
			templ.EscapeString(lang), templ.EscapeString(title), baseStyles); err != nil {
			return err
		}
		if notice != nil {
			if err := FlashBanner(*notice).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// FlashBanner renders a one-time notice as a styled banner.
func FlashBanner(notice flash.Notice) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		kind := string(notice.Kind)
		switch notice.Kind {
		case flash.KindSuccess, flash.KindInfo, flash.KindError:
		default:
			kind = string(flash.KindInfo)
		}
		_, err := fmt.Fprintf(w, `<div class="notice notice-%s" role="status">%s</div>`,
			templ.EscapeString(kind), templ.EscapeString(notice.Message))
		return err
	})
}

// Heading renders the page title with an optional subtitle line.
func Heading(title string, subtitle string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(title)); err != nil {
			return err
		}
		if subtitle == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<p>%s</p>`, templ.EscapeString(subtitle))
		return err
	})
}

// Empty renders nothing. Used when a page has no extra fragment.
func Empty() templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error {
		return nil
	})
}
