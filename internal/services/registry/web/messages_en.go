package web

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, headingKey, "Blue Carbon Registry")
	message.SetString(lang, taglineKey, "Upload monitoring artifacts, review verification outcomes, and issue simulated ledger tags.")
	message.SetString(lang, uploadTitleKey, "Submit monitoring artifact")
	message.SetString(lang, projectLabelKey, "Project name")
	message.SetString(lang, artifactLabelKey, "Artifact (PNG, JPEG, or sensor CSV)")
	message.SetString(lang, uploadButtonKey, "Verify and register")
	message.SetString(lang, issueTitleKey, "Issue credits")
	message.SetString(lang, issueHintKey, "Assigns a ledger tag to the newest verified record without one.")
	message.SetString(lang, issueButtonKey, "Issue latest verified record")
	message.SetString(lang, exportLinkKey, "Download registry as CSV")
	message.SetString(lang, noRecordsKey, "No records yet.")
	message.SetString(lang, colIDKey, "ID")
	message.SetString(lang, colUUIDKey, "UUID")
	message.SetString(lang, colCreatedKey, "Created")
	message.SetString(lang, colProjectKey, "Project")
	message.SetString(lang, colTypeKey, "Type")
	message.SetString(lang, colCreditsKey, "Credits")
	message.SetString(lang, colStatusKey, "Status")
	message.SetString(lang, colNoteKey, "Note")
	message.SetString(lang, colTxHashKey, "Tx hash")
}
