package web

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	webi18n "github.com/tidemark/bluecarbon/internal/web/i18n"
	webtemplates "github.com/tidemark/bluecarbon/internal/web/templates"
)

// ProjectOption is a project offered in select inputs.
type ProjectOption struct {
	ID   int64
	Name string
}

// ProjectRow is one project prepared for display.
type ProjectRow struct {
	ID        int64
	Name      string
	Location  string
	CreatedAt string
	TxHash    string
}

// CreditRow is one ledger entry prepared for display.
type CreditRow struct {
	ID          int64
	ProjectName string
	DataType    string
	Credits     float64
	Status      string
	Notes       string
	Timestamp   string
	TxHash      string
}

// ComplaintRow is one complaint prepared for display.
type ComplaintRow struct {
	ID          int64
	ProjectName string
	Complaint   string
	Status      string
	CreatedAt   string
}

func navBar(pageCopy portalCopy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<nav><a href="/">%s</a><a href="/upload">%s</a><a href="/credits">%s</a><a href="/complaints">%s</a></nav>`,
			templ.EscapeString(pageCopy.NavProjects),
			templ.EscapeString(pageCopy.NavUpload),
			templ.EscapeString(pageCopy.NavCredits),
			templ.EscapeString(pageCopy.NavComplaints),
		)
		return err
	})
}

func projectsPage(rows []ProjectRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCopy := newPortalCopy(webi18n.PrinterFromContext(ctx))
		if err := navBar(pageCopy).Render(ctx, w); err != nil {
			return err
		}
		if err := webtemplates.Heading(pageCopy.ProjectsHeading, pageCopy.ProjectsTagline).Render(ctx, w); err != nil {
			return err
		}
		if err := registerForm(pageCopy).Render(ctx, w); err != nil {
			return err
		}
		return projectsTable(pageCopy, rows).Render(ctx, w)
	})
}

func registerForm(pageCopy portalCopy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form method="post" action="/projects">`+
			`<h2>%s</h2>`+
			`<label for="name">%s</label><input type="text" id="name" name="name" required>`+
			`<label for="location">%s</label><input type="text" id="location" name="location">`+
			`<label for="description">%s</label><textarea id="description" name="description"></textarea>`+
			`<button type="submit">%s</button>`+
			`</form>`,
			templ.EscapeString(pageCopy.RegisterTitle),
			templ.EscapeString(pageCopy.NameLabel),
			templ.EscapeString(pageCopy.LocationLabel),
			templ.EscapeString(pageCopy.DescriptionLabel),
			templ.EscapeString(pageCopy.RegisterButton),
		)
		return err
	})
}

func projectsTable(pageCopy portalCopy, rows []ProjectRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(rows) == 0 {
			_, err := fmt.Fprintf(w, `<p>%s</p>`, templ.EscapeString(pageCopy.NoProjects))
			return err
		}
		printer := webi18n.PrinterFromContext(ctx)
		if _, err := fmt.Fprintf(w, `<table><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			templ.EscapeString(pageCopy.ColID),
			templ.EscapeString(pageCopy.ColName),
			templ.EscapeString(pageCopy.ColLocation),
			templ.EscapeString(pageCopy.ColRegistered),
			templ.EscapeString(pageCopy.ColAuditTag),
		); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><code>%s</code></td></tr>`,
				printer.Sprintf("%d", row.ID),
				templ.EscapeString(row.Name),
				templ.EscapeString(row.Location),
				templ.EscapeString(row.CreatedAt),
				templ.EscapeString(row.TxHash),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

func uploadPage(options []ProjectOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCopy := newPortalCopy(webi18n.PrinterFromContext(ctx))
		if err := navBar(pageCopy).Render(ctx, w); err != nil {
			return err
		}
		if err := webtemplates.Heading(pageCopy.UploadHeading, pageCopy.UploadTagline).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="/upload" enctype="multipart/form-data">`+
			`<label for="project_id">%s</label><select id="project_id" name="project_id"><option value="">%s</option>`,
			templ.EscapeString(pageCopy.ProjectSelect),
			templ.EscapeString(pageCopy.NoneOption),
		); err != nil {
			return err
		}
		for _, option := range options {
			if _, err := fmt.Fprintf(w, `<option value="%d">%s</option>`, option.ID, templ.EscapeString(option.Name)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `</select>`+
			`<label for="proof">%s</label>`+
			`<input type="file" id="proof" name="proof" accept=".png,.jpg,.jpeg" required>`+
			`<button type="submit">%s</button>`+
			`</form>`,
			templ.EscapeString(pageCopy.ProofLabel),
			templ.EscapeString(pageCopy.VerifyButton),
		)
		return err
	})
}

func creditsPage(rows []CreditRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		printer := webi18n.PrinterFromContext(ctx)
		pageCopy := newPortalCopy(printer)
		if err := navBar(pageCopy).Render(ctx, w); err != nil {
			return err
		}
		if err := webtemplates.Heading(pageCopy.CreditsHeading, "").Render(ctx, w); err != nil {
			return err
		}
		if len(rows) == 0 {
			_, err := fmt.Fprintf(w, `<p>%s</p>`, templ.EscapeString(pageCopy.NoCredits))
			return err
		}
		if _, err := fmt.Fprintf(w, `<table><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			templ.EscapeString(pageCopy.ColID),
			templ.EscapeString(pageCopy.ColProject),
			templ.EscapeString(pageCopy.ColType),
			templ.EscapeString(pageCopy.ColCredits),
			templ.EscapeString(pageCopy.ColStatus),
			templ.EscapeString(pageCopy.ColNote),
			templ.EscapeString(pageCopy.ColWhen),
			templ.EscapeString(pageCopy.ColAuditTag),
		); err != nil {
			return err
		}
		for _, row := range rows {
			projectName := row.ProjectName
			if projectName == "" {
				projectName = "-"
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><code>%s</code></td></tr>`,
				printer.Sprintf("%d", row.ID),
				templ.EscapeString(projectName),
				templ.EscapeString(row.DataType),
				printer.Sprintf("%.2f", row.Credits),
				templ.EscapeString(row.Status),
				templ.EscapeString(row.Notes),
				templ.EscapeString(row.Timestamp),
				templ.EscapeString(row.TxHash),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

func complaintsPage(options []ProjectOption, rows []ComplaintRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		printer := webi18n.PrinterFromContext(ctx)
		pageCopy := newPortalCopy(printer)
		if err := navBar(pageCopy).Render(ctx, w); err != nil {
			return err
		}
		if err := webtemplates.Heading(pageCopy.ComplaintsHeading, pageCopy.ComplaintsTagline).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="/complaints">`+
			`<label for="project_id">%s</label><select id="project_id" name="project_id"><option value="">%s</option>`,
			templ.EscapeString(pageCopy.ProjectSelect),
			templ.EscapeString(pageCopy.NoneOption),
		); err != nil {
			return err
		}
		for _, option := range options {
			if _, err := fmt.Fprintf(w, `<option value="%d">%s</option>`, option.ID, templ.EscapeString(option.Name)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</select>`+
			`<label for="complaint">%s</label><textarea id="complaint" name="complaint" required></textarea>`+
			`<button type="submit">%s</button>`+
			`</form>`,
			templ.EscapeString(pageCopy.ComplaintLabel),
			templ.EscapeString(pageCopy.ComplaintButton),
		); err != nil {
			return err
		}
		if len(rows) == 0 {
			_, err := fmt.Fprintf(w, `<p>%s</p>`, templ.EscapeString(pageCopy.NoComplaints))
			return err
		}
		if _, err := fmt.Fprintf(w, `<table><thead><tr><th>%s</th><th>%s</th><th>%s</th><th>%s</th><th>%s</th></tr></thead><tbody>`,
			templ.EscapeString(pageCopy.ColID),
			templ.EscapeString(pageCopy.ColProject),
			templ.EscapeString(pageCopy.ColComplaint),
			templ.EscapeString(pageCopy.ColStatus),
			templ.EscapeString(pageCopy.ColFiled),
		); err != nil {
			return err
		}
		for _, row := range rows {
			projectName := row.ProjectName
			if projectName == "" {
				projectName = "-"
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				printer.Sprintf("%d", row.ID),
				templ.EscapeString(projectName),
				templ.EscapeString(row.Complaint),
				templ.EscapeString(row.Status),
				templ.EscapeString(row.CreatedAt),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
