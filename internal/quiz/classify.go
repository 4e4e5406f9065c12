package quiz

// Analysis is the final classification of a finished session together with the
// weight breakdown that produced it.
type Analysis struct {
	SkinType        SkinType     `json:"skin_type"`
	Characteristics WeightVector `json:"characteristics"`
}

// Resolve picks the skin type with the highest accumulated weight. Ties go to
// the category listed first in SkinTypes, so the same vector always resolves
// to the same type. An all-zero vector resolves to oily by the same rule.
func Resolve(weights WeightVector) Analysis {
	winner := SkinTypes[0]
	max := weights[winner]
	for _, t := range SkinTypes[1:] {
		if weights[t] > max {
			winner = t
			max = weights[t]
		}
	}

	return Analysis{
		SkinType:        winner,
		Characteristics: weights.Clone(),
	}
}
