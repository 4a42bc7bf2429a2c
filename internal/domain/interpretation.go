package domain

// SafetyLevel is the risk category assigned to a question.
type SafetyLevel string

// Possible safety levels
const (
	SafetyLevelNormal SafetyLevel = "normal"
	SafetyLevelHealth SafetyLevel = "health"
	SafetyLevelLegal  SafetyLevel = "legal"
	SafetyLevelDanger SafetyLevel = "danger"
)

// SafetyCheck is the verdict on a question. Recommendation is empty for
// the normal level.
type SafetyCheck struct {
	Level          SafetyLevel `json:"level"`
	Disclaimer     string      `json:"disclaimer"`
	Recommendation string      `json:"recommendation,omitempty"`
}

// HasRecommendation reports whether the check points to a professional.
func (s SafetyCheck) HasRecommendation() bool {
	return s.Recommendation != ""
}

// Mood is the overall tone of a reading.
type Mood string

// Possible moods
const (
	MoodCautious      Mood = "cautious"
	MoodBalanced      Mood = "balanced"
	MoodOpportunities Mood = "opportunities"
)

// Anchor is a visual symbol attached to a reading.
type Anchor string

// Possible anchors
const (
	AnchorWave      Anchor = "wave"
	AnchorMountain  Anchor = "mountain"
	AnchorLightning Anchor = "lightning"
	AnchorSun       Anchor = "sun"
)

// Block size limits of an InterpretationResult.
const (
	MaxNowSentences       = 5
	MaxChangesSentences   = 3
	MaxTrendSentences     = 4
	MaxPracticalSentences = 3
	MaxAnchors            = 2
)

// InterpretationResult is a composed reading split into blocks. Trend is
// nil when the cast had no changing lines.
type InterpretationResult struct {
	Now         []string    `json:"now"`
	Changes     []string    `json:"changes"`
	Trend       []string    `json:"trend,omitempty"`
	Practical   []string    `json:"practical"`
	Mood        Mood        `json:"mood"`
	Anchors     []Anchor    `json:"anchors"`
	SafetyCheck SafetyCheck `json:"safety_check"`
}
