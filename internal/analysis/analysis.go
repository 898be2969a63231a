// Package analysis holds the keyword rules and canned texts used to
// annotate dreams and reports. Everything here is a pure function of its
// input.
package analysis

import (
	"slices"
	"strings"

	"github.com/nguyentranbao-ct/dream-api/internal/models"
)

const (
	LangES = "es"
	LangEN = "en"
	LangPT = "pt"

	DefaultLanguage = LangES
)

const (
	TagWater   = "agua"
	TagFalling = "caida"
	TagFlying  = "volar"
	TagAudio   = "audio"
)

// Rule tags text containing any of Keywords with Tag.
type Rule struct {
	Locale   string
	Keywords []string
	Tag      string
}

// Rules are evaluated in order, independently of each other and of the
// dream's declared language.
var Rules = []Rule{
	{Locale: LangES, Keywords: []string{"agua"}, Tag: TagWater},
	{Locale: LangEN, Keywords: []string{"water"}, Tag: TagWater},
	{Locale: LangPT, Keywords: []string{"água"}, Tag: TagWater},

	{Locale: LangES, Keywords: []string{"caer", "caí", "caía", "cayendo", "caída"}, Tag: TagFalling},
	{Locale: LangEN, Keywords: []string{"fall", "fell"}, Tag: TagFalling},
	{Locale: LangPT, Keywords: []string{"cair", "caindo", "caí"}, Tag: TagFalling},

	{Locale: LangES, Keywords: []string{"volar", "volando", "volé", "volaba"}, Tag: TagFlying},
	{Locale: LangEN, Keywords: []string{"fly", "flew", "flight"}, Tag: TagFlying},
	{Locale: LangPT, Keywords: []string{"voar", "voando", "voei"}, Tag: TagFlying},
}

// Classify returns the tags whose rules match text, without duplicates,
// in rule order. Matching is a case-insensitive substring test.
func Classify(text string) []string {
	lower := strings.ToLower(text)
	tags := make([]string, 0, 3)
	for _, rule := range Rules {
		if slices.Contains(tags, rule.Tag) {
			continue
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, rule.Tag)
				break
			}
		}
	}
	return tags
}

// Resolve returns lang when canned texts exist for it, otherwise Spanish.
func Resolve(lang string) string {
	switch l := strings.ToLower(strings.TrimSpace(lang)); l {
	case LangES, LangEN, LangPT:
		return l
	default:
		return DefaultLanguage
	}
}

var (
	textSummary = map[string]string{
		LangES: "Un análisis inicial basado en patrones comunes de sueños.",
		LangEN: "An initial analysis based on common dream patterns.",
		LangPT: "Uma análise inicial baseada em padrões comuns de sonhos.",
	}
	textRecommendations = map[string][]string{
		LangES: {"Lleva un diario de sueños", "Practica higiene del sueño"},
		LangEN: {"Keep a dream journal", "Practice sleep hygiene"},
		LangPT: {"Mantenha um diário de sonhos", "Pratique higiene do sono"},
	}
	audioSummary = map[string]string{
		LangES: "Análisis a partir de audio (placeholder)",
		LangEN: "Analysis from audio (placeholder)",
		LangPT: "Análise a partir de áudio (placeholder)",
	}
)

// TextAnalysis builds the analysis of a written dream.
func TextAnalysis(text, lang string) *models.Analysis {
	resolved := Resolve(lang)
	return &models.Analysis{
		Summary:                  cloneMap(textSummary),
		Themes:                   Classify(text),
		Recommendations:          cloneRecommendations(textRecommendations),
		Language:                 resolved,
		LocalizedSummary:         textSummary[resolved],
		LocalizedRecommendations: slices.Clone(textRecommendations[resolved]),
	}
}

// AudioAnalysis builds the fixed analysis attached to audio dreams. The
// audio content is never inspected.
func AudioAnalysis(lang string) *models.Analysis {
	resolved := Resolve(lang)
	return &models.Analysis{
		Summary:          cloneMap(audioSummary),
		Themes:           []string{TagAudio},
		Language:         resolved,
		LocalizedSummary: audioSummary[resolved],
	}
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneRecommendations(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}
