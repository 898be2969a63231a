package analysis

var (
	reportSubject = map[string]string{
		LangES: "Informe detallado de tu sueño",
		LangEN: "Detailed dream report",
		LangPT: "Relatório detalhado do seu sonho",
	}
	reportContent = map[string]string{
		LangES: "Gracias por confiar en Revelia.life. Adjuntamos un análisis más profundo de tu sueño.",
		LangEN: "Thanks for trusting Revelia.life. We attach a deeper analysis of your dream.",
		LangPT: "Obrigado por confiar na Revelia.life. Anexamos uma análise mais profunda do seu sonho.",
	}
)

// ReportText returns the subject and body of a dream report in lang,
// falling back to Spanish.
func ReportText(lang string) (subject, content string) {
	resolved := Resolve(lang)
	return reportSubject[resolved], reportContent[resolved]
}
