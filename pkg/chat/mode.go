package chat

// Mode is the request-level enumeration selecting generation parameters and
// an optional extra system directive.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeResearch Mode = "research"
	ModeAnalysis Mode = "analysis"
)

// Model tiers; the caller maps these onto concrete model names.
const (
	TierFast     = "fast"
	TierAdvanced = "advanced"
)

// ModeConfig is one fixed bundle of generation parameters.
type ModeConfig struct {
	ModelTier        string
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

var modeConfigs = map[Mode]ModeConfig{
	ModeStandard: {
		ModelTier:   TierFast,
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        1.0,
	},
	ModeResearch: {
		ModelTier:        TierAdvanced,
		Temperature:      0.3,
		MaxTokens:        4096,
		TopP:             0.95,
		FrequencyPenalty: 0.2,
		PresencePenalty:  0.1,
	},
	ModeAnalysis: {
		ModelTier:        TierAdvanced,
		Temperature:      0.2,
		MaxTokens:        4096,
		TopP:             0.9,
		FrequencyPenalty: 0.1,
		PresencePenalty:  0.3,
	},
}

// ResolveMode maps a raw mode string to a known Mode. Absent or unrecognized
// values always resolve to standard; there is no failure path.
func ResolveMode(raw string) Mode {
	switch Mode(raw) {
	case ModeResearch:
		return ModeResearch
	case ModeAnalysis:
		return ModeAnalysis
	default:
		return ModeStandard
	}
}

// ConfigFor returns the generation parameters for a mode.
func ConfigFor(mode Mode) ModeConfig {
	if cfg, ok := modeConfigs[mode]; ok {
		return cfg
	}
	return modeConfigs[ModeStandard]
}
