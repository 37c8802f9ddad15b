package llm

import (
	"fmt"
)

// Lot carries the free-text lot description into the prompt. Fields are
// interpolated verbatim; empty ones render as empty strings.
type Lot struct {
	LotURL         string
	Auctioneer     string
	CarTitle       string
	Year           string
	KM             string
	ConditionNotes string
}

const systemPrompt = "Você é um avaliador de oportunidades de lucro em leilões de carros no Brasil. Responda em JSON."

const userPromptTemplate = `Lote: %s
Leiloeiro: %s
Veículo: %s
Ano: %s
KM: %s
Condições/Observações: %s

Tarefa:
- Dê uma nota de 0 a 100 (score) para potencial de lucro.
- Informe lance máximo recomendado (em R$) e margem estimada (em %%).
- Classifique risco em LOW/MEDIUM/HIGH.
- Inclua breve justificativa.
Responda somente JSON com as chaves: score, recommended_bid, margin, risk_level, reasoning.`

// UserPrompt renders the lot into the fixed evaluation task.
func UserPrompt(lot Lot) string {
	return fmt.Sprintf(userPromptTemplate,
		lot.LotURL,
		lot.Auctioneer,
		lot.CarTitle,
		lot.Year,
		lot.KM,
		lot.ConditionNotes,
	)
}
