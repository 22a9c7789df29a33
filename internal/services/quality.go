package services

import "strings"

// AnalyzePostQuality scores post text on [0,100] with a deliberately simple,
// explainable heuristic: a 20-point base plus 20 points for each of four
// independent conditions. It is a pure function of the text; long-enough,
// wordy, link-free, calm posts score 100.
func AnalyzePostQuality(text string) float64 {
	score := 20.0
	if len(text) > 30 {
		score += 20
	}
	if len(strings.Fields(text)) > 10 {
		score += 20
	}
	if !strings.Contains(strings.ToLower(text), "http") {
		score += 20
	}
	if strings.Count(text, "!") < 5 {
		score += 20
	}
	if score > 100 {
		score = 100
	}
	return score
}
