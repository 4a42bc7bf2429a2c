package domain

// Trigram describes one of the two three-line halves of a hexagram.
type Trigram struct {
	Name        string `json:"name"        yaml:"name"        validate:"required"`
	Description string `json:"description" yaml:"description"`
}

// Trigrams holds the upper and lower halves of a hexagram.
type Trigrams struct {
	Upper Trigram `json:"upper" yaml:"upper"`
	Lower Trigram `json:"lower" yaml:"lower"`
}

// Hexagram is the static reference record for one hexagram number.
// Only Number, Name and Interpretation are guaranteed; every other field
// may be empty and consumers must fall back gracefully.
type Hexagram struct {
	Number              int       `json:"number"                         yaml:"number"               validate:"min=1,max=64"`
	Name                string    `json:"name"                           yaml:"name"                 validate:"required"`
	Interpretation      string    `json:"interpretation"                 yaml:"interpretation"       validate:"required"`
	KeyPhrase           string    `json:"key_phrase,omitempty"           yaml:"keyPhrase"`
	Image               string    `json:"image,omitempty"                yaml:"image"`
	Qualities           []string  `json:"qualities,omitempty"            yaml:"qualities"`
	Trigrams            *Trigrams `json:"trigrams,omitempty"             yaml:"trigrams"`
	LineTexts           []string  `json:"line_texts,omitempty"           yaml:"lineTexts"            validate:"omitempty,len=6"`
	ReflectionQuestions []string  `json:"reflection_questions,omitempty" yaml:"reflectionQuestions"`
	GeneralStrategy     string    `json:"general_strategy,omitempty"     yaml:"generalStrategy"`
	LeadershipStrategy  string    `json:"leadership_strategy,omitempty"  yaml:"leadershipStrategy"`
	SubordinateStrategy string    `json:"subordinate_strategy,omitempty" yaml:"subordinateStrategy"`
	PracticalAdvice     []string  `json:"practical_advice,omitempty"     yaml:"practicalAdvice"`
}

// HasLineTexts reports whether the record carries a text for every line.
func (h *Hexagram) HasLineTexts() bool {
	return len(h.LineTexts) == LineCount
}
