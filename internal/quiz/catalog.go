package quiz

// Question is one multiple-choice step of the skin-type quiz. The option text is
// the join key into the scoring table, so it must match answerWeights exactly.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

// Catalog is the static, ordered question list. Loaded once, never mutated.
type Catalog struct {
	questions []Question
}

func (c *Catalog) Get(i int) Question {
	return c.questions[i]
}

func (c *Catalog) Len() int {
	return len(c.questions)
}

// DefaultCatalog returns the fixed eight-question skin-type assessment.
func DefaultCatalog() *Catalog {
	return &Catalog{questions: []Question{
		{
			ID:     1,
			Prompt: "Como você descreveria a oleosidade da sua pele?",
			Options: []string{
				"Muito oleosa em todo o rosto",
				"Oleosa na zona T",
				"Normal, sem oleosidade excessiva",
				"Ressecada ou com descamação",
				"Muda dependendo do clima ou estação",
			},
		},
		{
			ID:     2,
			Prompt: "Sua pele costuma ter reações a produtos cosméticos?",
			Options: []string{
				"Fica irritada facilmente, com vermelhidão ou coceira",
				"Algumas vezes, depende do produto",
				"Raramente ou nunca tem reações",
			},
		},
		{
			ID:     3,
			Prompt: "Como são os poros da sua pele?",
			Options: []string{
				"Grandes e visíveis em todo o rosto",
				"Visíveis apenas na zona T",
				"Pequenos e pouco visíveis",
				"Muito pequenos ou quase invisíveis",
			},
		},
		{
			ID:     4,
			Prompt: "Como sua pele fica ao longo do dia?",
			Options: []string{
				"Brilhante ou com excesso de oleosidade",
				"Mista: brilho em algumas áreas, mas normal ou seca em outras",
				"Equilibrada, com textura uniforme",
				"Seca, opaca ou com descamação",
			},
		},
		{
			ID:     5,
			Prompt: "Você sente repuxamento na pele?",
			Options: []string{
				"Sempre",
				"Algumas vezes",
				"Raramente ou nunca",
			},
		},
		{
			ID:     6,
			Prompt: "Como sua pele reage ao sol?",
			Options: []string{
				"Queima facilmente e fica vermelha",
				"Fica um pouco avermelhada, mas depois bronzeia",
				"Bronzeia facilmente e raramente queima",
				"Fica sempre muito sensível ao sol",
			},
		},
		{
			ID:     7,
			Prompt: "Qual é sua rotina atual de cuidados com a pele?",
			Options: []string{
				"Apenas lavo o rosto",
				"Lavo e uso um hidratante ou protetor solar",
				"Tenho uma rotina completa (limpeza, hidratação, tratamento, etc.)",
				"Não tenho uma rotina fixa",
			},
		},
		{
			ID:     8,
			Prompt: "Qual é sua principal preocupação com a pele?",
			Options: []string{
				"Acne ou oleosidade excessiva",
				"Ressecamento ou falta de hidratação",
				"Rugas, linhas finas ou flacidez",
				"Manchas ou tom desigual",
				"Sensibilidade ou vermelhidão",
			},
		},
	}}
}
