package web

import (
	"golang.org/x/text/message"

	webi18n "github.com/tidemark/bluecarbon/internal/web/i18n"
)

const (
	navProjectsKey   = "portal.nav.projects"
	navUploadKey     = "portal.nav.upload"
	navCreditsKey    = "portal.nav.credits"
	navComplaintsKey = "portal.nav.complaints"

	projectsHeadingKey  = "portal.projects.heading"
	projectsTaglineKey  = "portal.projects.tagline"
	registerTitleKey    = "portal.projects.form.title"
	nameLabelKey        = "portal.projects.form.name"
	locationLabelKey    = "portal.projects.form.location"
	descriptionLabelKey = "portal.projects.form.description"
	registerButtonKey   = "portal.projects.form.submit"
	noProjectsKey       = "portal.projects.empty"

	uploadHeadingKey  = "portal.upload.heading"
	uploadTaglineKey  = "portal.upload.tagline"
	projectSelectKey  = "portal.upload.project"
	noneOptionKey     = "portal.upload.none"
	proofLabelKey     = "portal.upload.proof"
	verifyButtonKey   = "portal.upload.submit"
	creditsHeadingKey = "portal.credits.heading"
	noCreditsKey      = "portal.credits.empty"

	complaintsHeadingKey = "portal.complaints.heading"
	complaintsTaglineKey = "portal.complaints.tagline"
	complaintLabelKey    = "portal.complaints.form.complaint"
	complaintButtonKey   = "portal.complaints.form.submit"
	noComplaintsKey      = "portal.complaints.empty"

	colIDKey         = "portal.col.id"
	colNameKey       = "portal.col.name"
	colLocationKey   = "portal.col.location"
	colRegisteredKey = "portal.col.registered"
	colAuditTagKey   = "portal.col.audit_tag"
	colProjectKey    = "portal.col.project"
	colTypeKey       = "portal.col.type"
	colCreditsKey    = "portal.col.credits"
	colStatusKey     = "portal.col.status"
	colNoteKey       = "portal.col.note"
	colWhenKey       = "portal.col.when"
	colComplaintKey  = "portal.col.complaint"
	colFiledKey      = "portal.col.filed"
)

// portalCopy holds the translatable copy for the portal pages.
type portalCopy struct {
	NavProjects   string
	NavUpload     string
	NavCredits    string
	NavComplaints string

	ProjectsHeading  string
	ProjectsTagline  string
	RegisterTitle    string
	NameLabel        string
	LocationLabel    string
	DescriptionLabel string
	RegisterButton   string
	NoProjects       string

	UploadHeading  string
	UploadTagline  string
	ProjectSelect  string
	NoneOption     string
	ProofLabel     string
	VerifyButton   string
	CreditsHeading string
	NoCredits      string

	ComplaintsHeading string
	ComplaintsTagline string
	ComplaintLabel    string
	ComplaintButton   string
	NoComplaints      string

	ColID         string
	ColName       string
	ColLocation   string
	ColRegistered string
	ColAuditTag   string
	ColProject    string
	ColType       string
	ColCredits    string
	ColStatus     string
	ColNote       string
	ColWhen       string
	ColComplaint  string
	ColFiled      string
}

func newPortalCopy(p *message.Printer) portalCopy {
	return portalCopy{
		NavProjects:   webi18n.Localize(p, navProjectsKey, "Projects"),
		NavUpload:     webi18n.Localize(p, navUploadKey, "Upload proof"),
		NavCredits:    webi18n.Localize(p, navCreditsKey, "Credit ledger"),
		NavComplaints: webi18n.Localize(p, navComplaintsKey, "Complaints"),

		ProjectsHeading:  webi18n.Localize(p, projectsHeadingKey, "Blue Carbon Portal"),
		ProjectsTagline:  webi18n.Localize(p, projectsTaglineKey, "Register restoration projects and track their audit trail."),
		RegisterTitle:    webi18n.Localize(p, registerTitleKey, "Register project"),
		NameLabel:        webi18n.Localize(p, nameLabelKey, "Name"),
		LocationLabel:    webi18n.Localize(p, locationLabelKey, "Location"),
		DescriptionLabel: webi18n.Localize(p, descriptionLabelKey, "Description"),
		RegisterButton:   webi18n.Localize(p, registerButtonKey, "Register"),
		NoProjects:       webi18n.Localize(p, noProjectsKey, "No projects registered yet."),

		UploadHeading:  webi18n.Localize(p, uploadHeadingKey, "Upload proof image"),
		UploadTagline:  webi18n.Localize(p, uploadTaglineKey, "Verified uploads earn variance-based credits; implausible images are recorded as rejected."),
		ProjectSelect:  webi18n.Localize(p, projectSelectKey, "Project"),
		NoneOption:     webi18n.Localize(p, noneOptionKey, "(none)"),
		ProofLabel:     webi18n.Localize(p, proofLabelKey, "Proof image (PNG or JPEG)"),
		VerifyButton:   webi18n.Localize(p, verifyButtonKey, "Verify"),
		CreditsHeading: webi18n.Localize(p, creditsHeadingKey, "Credit ledger"),
		NoCredits:      webi18n.Localize(p, noCreditsKey, "No credits recorded yet."),

		ComplaintsHeading: webi18n.Localize(p, complaintsHeadingKey, "Complaints"),
		ComplaintsTagline: webi18n.Localize(p, complaintsTaglineKey, "File and review community grievances."),
		ComplaintLabel:    webi18n.Localize(p, complaintLabelKey, "Complaint"),
		ComplaintButton:   webi18n.Localize(p, complaintButtonKey, "Submit"),
		NoComplaints:      webi18n.Localize(p, noComplaintsKey, "No complaints filed yet."),

		ColID:         webi18n.Localize(p, colIDKey, "ID"),
		ColName:       webi18n.Localize(p, colNameKey, "Name"),
		ColLocation:   webi18n.Localize(p, colLocationKey, "Location"),
		ColRegistered: webi18n.Localize(p, colRegisteredKey, "Registered"),
		ColAuditTag:   webi18n.Localize(p, colAuditTagKey, "Audit tag"),
		ColProject:    webi18n.Localize(p, colProjectKey, "Project"),
		ColType:       webi18n.Localize(p, colTypeKey, "Type"),
		ColCredits:    webi18n.Localize(p, colCreditsKey, "Credits"),
		ColStatus:     webi18n.Localize(p, colStatusKey, "Status"),
		ColNote:       webi18n.Localize(p, colNoteKey, "Note"),
		ColWhen:       webi18n.Localize(p, colWhenKey, "When"),
		ColComplaint:  webi18n.Localize(p, colComplaintKey, "Complaint"),
		ColFiled:      webi18n.Localize(p, colFiledKey, "Filed"),
	}
}
