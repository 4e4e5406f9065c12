package quiz

// SkinType is one of the five classification categories.
type SkinType string

const (
	SkinTypeOily        SkinType = "oily"
	SkinTypeCombination SkinType = "combination"
	SkinTypeNormal      SkinType = "normal"
	SkinTypeDry         SkinType = "dry"
	SkinTypeSensitive   SkinType = "sensitive"
)

// SkinTypes fixes the category iteration order. Scoring output, resolution and
// the tie-break all follow this order, never map enumeration order.
var SkinTypes = []SkinType{
	SkinTypeOily,
	SkinTypeCombination,
	SkinTypeNormal,
	SkinTypeDry,
	SkinTypeSensitive,
}

// WeightVector accumulates points per skin type over a session. Entries only
// ever increase.
type WeightVector map[SkinType]int

func NewWeightVector() WeightVector {
	w := make(WeightVector, len(SkinTypes))
	for _, t := range SkinTypes {
		w[t] = 0
	}
	return w
}

// Clone returns an independent copy, used for snapshots handed outside the session.
func (w WeightVector) Clone() WeightVector {
	out := make(WeightVector, len(SkinTypes))
	for _, t := range SkinTypes {
		out[t] = w[t]
	}
	return out
}

type weightDelta struct {
	skinType SkinType
	points   int
}

// answerWeights maps (question id, option text) to its category contributions.
// Some options intentionally contribute nothing.
var answerWeights = map[int]map[string][]weightDelta{
	1: {
		"Muito oleosa em todo o rosto":        {{SkinTypeOily, 2}},
		"Oleosa na zona T":                    {{SkinTypeCombination, 1}},
		"Normal, sem oleosidade excessiva":    {{SkinTypeNormal, 2}},
		"Ressecada ou com descamação":         {{SkinTypeDry, 2}},
		"Muda dependendo do clima ou estação": {{SkinTypeSensitive, 1}},
	},
	2: {
		"Fica irritada facilmente, com vermelhidão ou coceira": {{SkinTypeSensitive, 2}},
		"Algumas vezes, depende do produto":                    {{SkinTypeSensitive, 1}},
		"Raramente ou nunca tem reações":                       {{SkinTypeNormal, 2}},
	},
	3: {
		"Grandes e visíveis em todo o rosto": {{SkinTypeOily, 2}},
		"Visíveis apenas na zona T":          {{SkinTypeCombination, 2}},
		"Pequenos e pouco visíveis":          {{SkinTypeNormal, 2}},
		"Muito pequenos ou quase invisíveis": {{SkinTypeDry, 1}},
	},
	4: {
		"Brilhante ou com excesso de oleosidade":                       {{SkinTypeOily, 2}},
		"Mista: brilho em algumas áreas, mas normal ou seca em outras": {{SkinTypeCombination, 2}},
		"Equilibrada, com textura uniforme":                            {{SkinTypeNormal, 2}},
		"Seca, opaca ou com descamação":                                {{SkinTypeDry, 2}},
	},
	5: {
		"Sempre":             {{SkinTypeDry, 2}},
		"Algumas vezes":      {{SkinTypeSensitive, 1}},
		"Raramente ou nunca": {{SkinTypeNormal, 1}},
	},
	6: {
		"Queima facilmente e fica vermelha":              {{SkinTypeSensitive, 2}},
		"Fica um pouco avermelhada, mas depois bronzeia": {{SkinTypeSensitive, 1}},
		"Bronzeia facilmente e raramente queima":         {{SkinTypeNormal, 1}},
		"Fica sempre muito sensível ao sol":              {{SkinTypeSensitive, 2}},
	},
	7: {
		"Apenas lavo o rosto":                        {{SkinTypeOily, 1}},
		"Lavo e uso um hidratante ou protetor solar": {{SkinTypeNormal, 1}},
		"Tenho uma rotina completa (limpeza, hidratação, tratamento, etc.)": {
			{SkinTypeDry, 1},
			{SkinTypeSensitive, 1},
		},
		"Não tenho uma rotina fixa": {{SkinTypeSensitive, 1}},
	},
	8: {
		"Acne ou oleosidade excessiva":        {{SkinTypeOily, 2}},
		"Ressecamento ou falta de hidratação": {{SkinTypeDry, 2}},
		"Rugas, linhas finas ou flacidez":     {{SkinTypeDry, 1}},
		"Manchas ou tom desigual":             {{SkinTypeSensitive, 1}},
		"Sensibilidade ou vermelhidão":        {{SkinTypeSensitive, 2}},
	},
}

// Score applies the weight deltas for one answered question. Unknown
// (questionID, answer) pairs contribute nothing; the option text is the join
// key, so a mismatch is an abstention, not an error.
func Score(weights WeightVector, questionID int, answer string) {
	for _, d := range answerWeights[questionID][answer] {
		weights[d.skinType] += d.points
	}
}
