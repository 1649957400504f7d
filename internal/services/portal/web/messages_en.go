package web

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, navProjectsKey, "Projects")
	message.SetString(lang, navUploadKey, "Upload proof")
	message.SetString(lang, navCreditsKey, "Credit ledger")
	message.SetString(lang, navComplaintsKey, "Complaints")

	message.SetString(lang, projectsHeadingKey, "Blue Carbon Portal")
	message.SetString(lang, projectsTaglineKey, "Register restoration projects and track their audit trail.")
	message.SetString(lang, registerTitleKey, "Register project")
	message.SetString(lang, nameLabelKey, "Name")
	message.SetString(lang, locationLabelKey, "Location")
	message.SetString(lang, descriptionLabelKey, "Description")
	message.SetString(lang, registerButtonKey, "Register")
	message.SetString(lang, noProjectsKey, "No projects registered yet.")

	message.SetString(lang, uploadHeadingKey, "Upload proof image")
	message.SetString(lang, uploadTaglineKey, "Verified uploads earn variance-based credits; implausible images are recorded as rejected.")
	message.SetString(lang, projectSelectKey, "Project")
	message.SetString(lang, noneOptionKey, "(none)")
	message.SetString(lang, proofLabelKey, "Proof image (PNG or JPEG)")
	message.SetString(lang, verifyButtonKey, "Verify")
	message.SetString(lang, creditsHeadingKey, "Credit ledger")
	message.SetString(lang, noCreditsKey, "No credits recorded yet.")

	message.SetString(lang, complaintsHeadingKey, "Complaints")
	message.SetString(lang, complaintsTaglineKey, "File and review community grievances.")
	message.SetString(lang, complaintLabelKey, "Complaint")
	message.SetString(lang, complaintButtonKey, "Submit")
	message.SetString(lang, noComplaintsKey, "No complaints filed yet.")

	message.SetString(lang, colIDKey, "ID")
	message.SetString(lang, colNameKey, "Name")
	message.SetString(lang, colLocationKey, "Location")
	message.SetString(lang, colRegisteredKey, "Registered")
	message.SetString(lang, colAuditTagKey, "Audit tag")
	message.SetString(lang, colProjectKey, "Project")
	message.SetString(lang, colTypeKey, "Type")
	message.SetString(lang, colCreditsKey, "Credits")
	message.SetString(lang, colStatusKey, "Status")
	message.SetString(lang, colNoteKey, "Note")
	message.SetString(lang, colWhenKey, "When")
	message.SetString(lang, colComplaintKey, "Complaint")
	message.SetString(lang, colFiledKey, "Filed")
}
