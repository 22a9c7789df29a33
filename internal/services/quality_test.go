package services

import "testing"

func TestAnalyzePostQuality(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "empty text keeps length-independent credits",
			text: "",
			want: 60,
		},
		{
			name: "long wordy clean text scores full marks",
			text: "The quick brown fox jumps over the lazy dog while the cat watches quietly",
			want: 100,
		},
		{
			name: "link costs twenty points",
			text: "The quick brown fox jumps over the lazy dog http://example.com while the cat watches",
			want: 80,
		},
		{
			name: "uppercase link is still a link",
			text: "The quick brown fox jumps over the lazy dog HTTP://EXAMPLE.COM while the cat watches",
			want: 80,
		},
		{
			name: "short spammy shouting",
			text: "Wow!!!!! Amazing!!!!!",
			want: 40,
		},
		{
			name: "long but few words",
			text: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			want: 80,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzePostQuality(tt.text); got != tt.want {
				t.Fatalf("AnalyzePostQuality(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzePostQualityBounds(t *testing.T) {
	samples := []string{
		"",
		"!",
		"!!!!!!!!!!",
		"http http http http http",
		"The quick brown fox jumps over the lazy dog while the cat watches quietly and the sun sets slowly",
	}
	for _, text := range samples {
		score := AnalyzePostQuality(text)
		if score < 0 || score > 100 {
			t.Fatalf("AnalyzePostQuality(%q) = %v, out of range", text, score)
		}
	}
}
