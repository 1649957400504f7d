package web

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	message.SetString(lang, headingKey, "Registro de Carbono Azul")
	message.SetString(lang, taglineKey, "Cargue artefactos de monitoreo, revise los resultados de verificación y emita etiquetas de libro mayor simuladas.")
	message.SetString(lang, uploadTitleKey, "Enviar artefacto de monitoreo")
	message.SetString(lang, projectLabelKey, "Nombre del proyecto")
	message.SetString(lang, artifactLabelKey, "Artefacto (PNG, JPEG o CSV de sensor)")
	message.SetString(lang, uploadButtonKey, "Verificar y registrar")
	message.SetString(lang, issueTitleKey, "Emitir créditos")
	message.SetString(lang, issueHintKey, "Asigna una etiqueta de libro mayor al registro verificado más reciente que no tenga una.")
	message.SetString(lang, issueButtonKey, "Emitir el último registro verificado")
	message.SetString(lang, exportLinkKey, "Descargar el registro en CSV")
	message.SetString(lang, noRecordsKey, "Aún no hay registros.")
	message.SetString(lang, colIDKey, "ID")
	message.SetString(lang, colUUIDKey, "UUID")
	message.SetString(lang, colCreatedKey, "Creado")
	message.SetString(lang, colProjectKey, "Proyecto")
	message.SetString(lang, colTypeKey, "Tipo")
	message.SetString(lang, colCreditsKey, "Créditos")
	message.SetString(lang, colStatusKey, "Estado")
	message.SetString(lang, colNoteKey, "Nota")
	message.SetString(lang, colTxHashKey, "Hash de transacción")
}
