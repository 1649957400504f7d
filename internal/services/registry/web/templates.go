package web

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	webi18n "github.com/tidemark/bluecarbon/internal/web/i18n"
	webtemplates "github.com/tidemark/bluecarbon/internal/web/templates"
)

// RecordRow is one registry entry prepared for display.
type RecordRow struct {
	ID          int64
	RecordUUID  string
	CreatedAt   string
	ProjectName string
	DataType    string
	Credits     int64
	MRVStatus   string
	MRVMsg      string
	TxHash      string
}

// RecordsPageView provides data for the registry home page.
type RecordsPageView struct {
	Rows []RecordRow
}

func recordsPage(view RecordsPageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		printer := webi18n.PrinterFromContext(ctx)
		pageCopy := newRegistryCopy(printer)
		if err := webtemplates.Heading(pageCopy.Heading, pageCopy.Tagline).Render(ctx, w); err != nil {
			return err
		}
		if err := uploadForm(pageCopy).Render(ctx, w); err != nil {
			return err
		}
		if err := issueForm(pageCopy).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p><a href="/export.csv">%s</a></p>`, templ.EscapeString(pageCopy.ExportLink)); err != nil {
			return err
		}
		return recordsTable(pageCopy, view.Rows).Render(ctx, w)
	})
}

func uploadForm(pageCopy registryCopy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form method="post" action="/records" enctype="multipart/form-data">`+
			`<h2>%s</h2>`+
			`<label for="project_name">%s</label>`+
			`<input type="text" id="project_name" name="project_name" required>`+
			`<label for="artifact">%s</label>`+
			`<input type="file" id="artifact" name="artifact" accept=".png,.jpg,.jpeg,.csv" required>`+
			`<button type="submit">%s</button>`+
			`</form>`,
			templ.EscapeString(pageCopy.UploadTitle),
			templ.EscapeString(pageCopy.ProjectLabel),
			templ.EscapeString(pageCopy.ArtifactLabel),
			templ.EscapeString(pageCopy.UploadButton),
		)
		return err
	})
}

func issueForm(pageCopy registryCopy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form method="post" action="/issue">`+
			`<h2>%s</h2>`+
			`<p>%s</p>`+
			`<button type="submit">%s</button>`+
			`</form>`,
			templ.EscapeString(pageCopy.IssueTitle),
			templ.EscapeString(pageCopy.IssueHint),
			templ.EscapeString(pageCopy.IssueButton),
		)
		return err
	})
}

func recordsTable(pageCopy registryCopy, rows []RecordRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(rows) == 0 {
			_, err := fmt.Fprintf(w, `<p>%s</p>`, templ.EscapeString(pageCopy.NoRecords))
			return err
		}
		printer := webi18n.PrinterFromContext(ctx)
		if _, err := fmt.Fprintf(w, `<table><thead><tr>`+
			`<th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th>`+
			`<th>%s</th><th>%s</th><th>%s</th><th>%s</th>`+
			`</tr></thead><tbody>`,
			templ.EscapeString(pageCopy.ColID),
			templ.EscapeString(pageCopy.ColUUID),
			templ.EscapeString(pageCopy.ColCreated),
			templ.EscapeString(pageCopy.ColProject),
			templ.EscapeString(pageCopy.ColType),
			templ.EscapeString(pageCopy.ColCredits),
			templ.EscapeString(pageCopy.ColStatus),
			templ.EscapeString(pageCopy.ColNote),
			templ.EscapeString(pageCopy.ColTxHash),
		); err != nil {
			return err
		}
		for _, row := range rows {
			txHash := row.TxHash
			if txHash == "" {
				txHash = "-"
			}
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><code>%s</code></td></tr>`,
				printer.Sprintf("%d", row.ID),
				templ.EscapeString(row.RecordUUID),
				templ.EscapeString(row.CreatedAt),
				templ.EscapeString(row.ProjectName),
				templ.EscapeString(row.DataType),
				printer.Sprintf("%d", row.Credits),
				templ.EscapeString(row.MRVStatus),
				templ.EscapeString(row.MRVMsg),
				templ.EscapeString(txHash),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
