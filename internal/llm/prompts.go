package llm

import "fmt"

// Per-operation personas. The planner persona asks for realistic Turkish
// wedding cost estimates; the Q&A persona answers free-form budget questions.
// Both always respond in Turkish.
const (
	BudgetPlannerSystemPrompt = "You are a Turkish wedding planning expert assistant. Provide realistic Turkish wedding cost estimates. Include Turkish currency (TL) and traditional wedding expenses like kına gecesi, söz, and düğün. Be detailed and practical. Always respond in Turkish."
	BudgetQuestionSystemPrompt = "You are a Turkish wedding planning expert assistant. Answer questions about wedding budgets and planning. Always respond in Turkish."
)

const (
	BudgetPlannerMaxTokens  = 2000
	BudgetQuestionMaxTokens = 1000
	BudgetTemperature       = 0.7
)

// BudgetPlanPrompt assembles the user message from the couple's structured input.
func BudgetPlanPrompt(location string, guestCount, budget int, preferences string) string {
	if preferences == "" {
		preferences = "Belirtilmedi"
	}
	return fmt.Sprintf(`Düğün bütçe planı oluşturmama yardım et:
- Şehir: %s
- Misafir sayısı: %d
- Toplam bütçe: %d TL
- Öncelikler: %s

Lütfen detaylı bir maliyet dağılımı sağla (mekan, yemek, fotoğraf, gelin/damat kıyafeti, müzik, davetiye, çiçek, kına organizasyonu vb.) ve bütçeyi optimize etmek için öneriler sun.`,
		location, guestCount, budget, preferences)
}
