package analysis

import (
	"testing"

	"behavior-analytics/internal/domain"
)

func TestDetectStress_Scenario(t *testing.T) {
	got := DetectStress("I am so stressed and overwhelmed, the deadline is too much")
	if got.Level != 6 {
		t.Fatalf("expected level 6, got %d", got.Level)
	}
	if got.Category != domain.StressModerate {
		t.Fatalf("expected Moderate, got %s", got.Category)
	}
}

func TestDetectStress_DistinctKeywordsOnly(t *testing.T) {
	got := DetectStress("tired tired tired TIRED")
	if got.Level != 2 {
		t.Fatalf("repeated keyword must count once, got level %d", got.Level)
	}
}

func TestDetectStress_SubstringMatches(t *testing.T) {
	// "pressure" dentro de "depressurepeat" tambien cuenta.
	got := DetectStress("depressurepeat")
	if got.Level != 2 {
		t.Fatalf("expected substring match to count, got %d", got.Level)
	}
}

func TestDetectStress_SaturatesAtTen(t *testing.T) {
	got := DetectStress("deadline pressure overwhelmed can't too much tired exhausted")
	if got.Level != 10 || got.Category != domain.StressHigh {
		t.Fatalf("expected level 10 High, got %+v", got)
	}
}

func TestStressLevel_Monotonic(t *testing.T) {
	prev := -1
	for k := 0; k <= len(StressKeywords())+2; k++ {
		level := StressLevel(k)
		if level != min(2*k, 10) {
			t.Fatalf("StressLevel(%d) = %d", k, level)
		}
		if level < prev {
			t.Fatalf("stress level decreased at k=%d", k)
		}
		prev = level
	}
}

func TestClassifyStress(t *testing.T) {
	cases := map[int]domain.StressCategory{
		0: domain.StressLow, 2: domain.StressLow, 3: domain.StressLow,
		4: domain.StressModerate, 6: domain.StressModerate,
		7: domain.StressHigh, 10: domain.StressHigh,
	}
	for level, want := range cases {
		if got := ClassifyStress(level); got != want {
			t.Fatalf("ClassifyStress(%d) = %s, want %s", level, got, want)
		}
	}
}
