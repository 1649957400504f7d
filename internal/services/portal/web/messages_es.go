package web

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	message.SetString(lang, navProjectsKey, "Proyectos")
	message.SetString(lang, navUploadKey, "Subir prueba")
	message.SetString(lang, navCreditsKey, "Libro de créditos")
	message.SetString(lang, navComplaintsKey, "Quejas")

	message.SetString(lang, projectsHeadingKey, "Portal de Carbono Azul")
	message.SetString(lang, projectsTaglineKey, "Registre proyectos de restauración y siga su rastro de auditoría.")
	message.SetString(lang, registerTitleKey, "Registrar proyecto")
	message.SetString(lang, nameLabelKey, "Nombre")
	message.SetString(lang, locationLabelKey, "Ubicación")
	message.SetString(lang, descriptionLabelKey, "Descripción")
	message.SetString(lang, registerButtonKey, "Registrar")
	message.SetString(lang, noProjectsKey, "Aún no hay proyectos registrados.")

	message.SetString(lang, uploadHeadingKey, "Subir imagen de prueba")
	message.SetString(lang, uploadTaglineKey, "Las cargas verificadas ganan créditos según la varianza; las imágenes inverosímiles se registran como rechazadas.")
	message.SetString(lang, projectSelectKey, "Proyecto")
	message.SetString(lang, noneOptionKey, "(ninguno)")
	message.SetString(lang, proofLabelKey, "Imagen de prueba (PNG o JPEG)")
	message.SetString(lang, verifyButtonKey, "Verificar")
	message.SetString(lang, creditsHeadingKey, "Libro de créditos")
	message.SetString(lang, noCreditsKey, "Aún no hay créditos registrados.")

	message.SetString(lang, complaintsHeadingKey, "Quejas")
	message.SetString(lang, complaintsTaglineKey, "Presente y revise quejas comunitarias.")
	message.SetString(lang, complaintLabelKey, "Queja")
	message.SetString(lang, complaintButtonKey, "Enviar")
	message.SetString(lang, noComplaintsKey, "Aún no hay quejas presentadas.")

	message.SetString(lang, colIDKey, "ID")
	message.SetString(lang, colNameKey, "Nombre")
	message.SetString(lang, colLocationKey, "Ubicación")
	message.SetString(lang, colRegisteredKey, "Registrado")
	message.SetString(lang, colAuditTagKey, "Etiqueta de auditoría")
	message.SetString(lang, colProjectKey, "Proyecto")
	message.SetString(lang, colTypeKey, "Tipo")
	message.SetString(lang, colCreditsKey, "Créditos")
	message.SetString(lang, colStatusKey, "Estado")
	message.SetString(lang, colNoteKey, "Nota")
	message.SetString(lang, colWhenKey, "Cuándo")
	message.SetString(lang, colComplaintKey, "Queja")
	message.SetString(lang, colFiledKey, "Presentada")
}
