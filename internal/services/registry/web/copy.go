package web

import (
	"golang.org/x/text/message"

	webi18n "github.com/tidemark/bluecarbon/internal/web/i18n"
)

const (
	headingKey       = "registry.heading"
	taglineKey       = "registry.tagline"
	uploadTitleKey   = "registry.upload.title"
	projectLabelKey  = "registry.upload.project"
	artifactLabelKey = "registry.upload.artifact"
	uploadButtonKey  = "registry.upload.submit"
	issueTitleKey    = "registry.issue.title"
	issueHintKey     = "registry.issue.hint"
	issueButtonKey   = "registry.issue.submit"
	exportLinkKey    = "registry.export.link"
	noRecordsKey     = "registry.records.empty"
	colIDKey         = "registry.col.id"
	colUUIDKey       = "registry.col.uuid"
	colCreatedKey    = "registry.col.created"
	colProjectKey    = "registry.col.project"
	colTypeKey       = "registry.col.type"
	colCreditsKey    = "registry.col.credits"
	colStatusKey     = "registry.col.status"
	colNoteKey       = "registry.col.note"
	colTxHashKey     = "registry.col.tx_hash"
)

// registryCopy holds the translatable copy for the registry home page.
type registryCopy struct {
	Heading       string
	Tagline       string
	UploadTitle   string
	ProjectLabel  string
	ArtifactLabel string
	UploadButton  string
	IssueTitle    string
	IssueHint     string
	IssueButton   string
	ExportLink    string
	NoRecords     string
	ColID         string
	ColUUID       string
	ColCreated    string
	ColProject    string
	ColType       string
	ColCredits    string
	ColStatus     string
	ColNote       string
	ColTxHash     string
}

func newRegistryCopy(p *message.Printer) registryCopy {
	return registryCopy{
		Heading:       webi18n.Localize(p, headingKey, "Blue Carbon Registry"),
		Tagline:       webi18n.Localize(p, taglineKey, "Upload monitoring artifacts, review verification outcomes, and issue simulated ledger tags."),
		UploadTitle:   webi18n.Localize(p, uploadTitleKey, "Submit monitoring artifact"),
		ProjectLabel:  webi18n.Localize(p, projectLabelKey, "Project name"),
		ArtifactLabel: webi18n.Localize(p, artifactLabelKey, "Artifact (PNG, JPEG, or sensor CSV)"),
		UploadButton:  webi18n.Localize(p, uploadButtonKey, "Verify and register"),
		IssueTitle:    webi18n.Localize(p, issueTitleKey, "Issue credits"),
		IssueHint:     webi18n.Localize(p, issueHintKey, "Assigns a ledger tag to the newest verified record without one."),
		IssueButton:   webi18n.Localize(p, issueButtonKey, "Issue latest verified record"),
		ExportLink:    webi18n.Localize(p, exportLinkKey, "Download registry as CSV"),
		NoRecords:     webi18n.Localize(p, noRecordsKey, "No records yet."),
		ColID:         webi18n.Localize(p, colIDKey, "ID"),
		ColUUID:       webi18n.Localize(p, colUUIDKey, "UUID"),
		ColCreated:    webi18n.Localize(p, colCreatedKey, "Created"),
		ColProject:    webi18n.Localize(p, colProjectKey, "Project"),
		ColType:       webi18n.Localize(p, colTypeKey, "Type"),
		ColCredits:    webi18n.Localize(p, colCreditsKey, "Credits"),
		ColStatus:     webi18n.Localize(p, colStatusKey, "Status"),
		ColNote:       webi18n.Localize(p, colNoteKey, "Note"),
		ColTxHash:     webi18n.Localize(p, colTxHashKey, "Tx hash"),
	}
}
