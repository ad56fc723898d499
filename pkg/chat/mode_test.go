package chat

import "testing"

func TestResolveMode(t *testing.T) {
	tests := []struct {
		raw  string
		want Mode
	}{
		{"standard", ModeStandard},
		{"research", ModeResearch},
		{"analysis", ModeAnalysis},
		{"", ModeStandard},
		{"turbo", ModeStandard},
		{"RESEARCH", ModeStandard},
	}

	for _, tt := range tests {
		if got := ResolveMode(tt.raw); got != tt.want {
			t.Errorf("ResolveMode(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestConfigFor(t *testing.T) {
	standard := ConfigFor(ModeStandard)
	research := ConfigFor(ModeResearch)
	analysis := ConfigFor(ModeAnalysis)

	if standard.ModelTier != TierFast {
		t.Errorf("standard tier = %q, want %q", standard.ModelTier, TierFast)
	}
	if research.ModelTier != TierAdvanced || analysis.ModelTier != TierAdvanced {
		t.Error("research and analysis must both use the advanced tier")
	}

	// Standard is the cheap mode: smallest budget, highest temperature.
	if standard.MaxTokens >= research.MaxTokens {
		t.Errorf("standard MaxTokens = %d, research = %d", standard.MaxTokens, research.MaxTokens)
	}
	if standard.Temperature <= research.Temperature {
		t.Errorf("standard Temperature = %v, research = %v", standard.Temperature, research.Temperature)
	}

	// Unknown modes get the standard bundle.
	if got := ConfigFor(Mode("bogus")); got != standard {
		t.Errorf("ConfigFor(bogus) = %+v, want standard", got)
	}
}
