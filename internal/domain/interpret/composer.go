package interpret

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phrazzld/yijing-api/internal/domain"
	"github.com/phrazzld/yijing-api/internal/domain/safety"
	"github.com/phrazzld/yijing-api/internal/textutil"
)

// maxStrategySentences is how many sentences of the general strategy open
// a reading.
const maxStrategySentences = 3

// Compose assembles a reading from the primary hexagram, the cast lines,
// the optional question and the resulting hexagram. second is nil when no
// line was changing, in which case the trend block is omitted.
//
// Compose never fails and never modifies its inputs: missing optional
// fields of a record fall back block by block.
func Compose(
	hexagram *domain.Hexagram,
	lines []domain.Line,
	question string,
	second *domain.Hexagram,
) domain.InterpretationResult {
	if hexagram == nil {
		hexagram = &domain.Hexagram{}
	}

	return domain.InterpretationResult{
		Now:         NowBlock(hexagram),
		Changes:     ChangesBlock(hexagram, lines),
		Trend:       TrendBlock(second),
		Practical:   PracticalBlock(hexagram),
		Mood:        MoodOf(hexagram),
		Anchors:     AnchorsOf(hexagram),
		SafetyCheck: safety.Classify(question),
	}
}

// NowBlock describes the present situation. The general strategy is split
// into sentences and its first three are kept; without it the key phrase or
// the interpretation is used as a single sentence.
func NowBlock(h *domain.Hexagram) []string {
	var now []string

	if strings.TrimSpace(h.GeneralStrategy) != "" {
		now = textutil.Truncate(textutil.SplitSentences(h.GeneralStrategy), maxStrategySentences)
	} else if s, ok := textutil.FirstNonEmpty(h.KeyPhrase, h.Interpretation); ok {
		now = []string{s}
	}

	if len(now) == 0 {
		now = []string{h.Interpretation}
	}

	return textutil.Truncate(now, domain.MaxNowSentences)
}

// ChangesBlock describes the changing lines of the cast, quoting their
// texts when the record has a text for every line.
func ChangesBlock(h *domain.Hexagram, lines []domain.Line) []string {
	changing := changingLines(lines)
	if len(changing) == 0 {
		return []string{StableSituation}
	}

	var changes []string
	if h.HasLineTexts() {
		for _, l := range changing {
			if l.Position < 1 || l.Position > domain.LineCount {
				continue
			}
			text := strings.TrimSpace(h.LineTexts[l.Position-1])
			changes = append(changes, fmt.Sprintf("%s %d: «%s»", ChangingLineIntro, l.Position, text))
		}
	}

	if len(changes) == 0 {
		changes = append(changes, changingCount(len(changing)))
		if len(changing) > 1 {
			changes = append(changes, SeveralChanges)
		}
	}

	return textutil.Truncate(changes, domain.MaxChangesSentences)
}

// TrendBlock describes where the situation is heading. It returns nil when
// there is no resulting hexagram.
func TrendBlock(second *domain.Hexagram) []string {
	if second == nil {
		return nil
	}

	trend := make([]string, 0, domain.MaxTrendSentences)
	if s, ok := textutil.FirstNonEmpty(second.KeyPhrase, second.Interpretation); ok {
		trend = append(trend, s)
	}
	if len(second.Qualities) > 0 {
		trend = append(trend, QualitiesIntro+": "+strings.Join(second.Qualities, ", ")+".")
	}
	trend = append(trend, TrendClosing)

	return textutil.Truncate(trend, domain.MaxTrendSentences)
}

// PracticalBlock gives advice: the record's own advice when present,
// otherwise one canned sentence per keyword cluster found in the
// interpretation.
func PracticalBlock(h *domain.Hexagram) []string {
	if advice := nonBlank(h.PracticalAdvice); len(advice) > 0 {
		return textutil.Truncate(advice, domain.MaxPracticalSentences)
	}

	text := textutil.Normalize(h.Interpretation)
	var practical []string
	for _, c := range practicalClusters {
		if textutil.ContainsAny(text, c.keywords) {
			practical = append(practical, c.advice)
		}
	}

	if len(practical) == 0 {
		practical = append(practical, InnerVoice)
	}

	return textutil.Truncate(practical, domain.MaxPracticalSentences)
}

// MoodOf derives the tone of the interpretation. Difficulty takes
// precedence over opportunity.
func MoodOf(h *domain.Hexagram) domain.Mood {
	text := textutil.Normalize(h.Interpretation)
	switch {
	case textutil.ContainsAny(text, cautiousKeywords):
		return domain.MoodCautious
	case textutil.ContainsAny(text, opportunityKeywords):
		return domain.MoodOpportunities
	default:
		return domain.MoodBalanced
	}
}

// AnchorsOf picks up to two symbols from the image, falling back to the
// qualities and finally to the sun.
func AnchorsOf(h *domain.Hexagram) []domain.Anchor {
	anchors := matchAnchors(textutil.Normalize(h.Image), imageAnchors, textutil.ContainsWord)

	if len(anchors) == 0 {
		qualities := textutil.Normalize(strings.Join(h.Qualities, " "))
		anchors = matchAnchors(qualities, qualityAnchors, textutil.ContainsAny)
	}

	if len(anchors) == 0 {
		anchors = []domain.Anchor{domain.AnchorSun}
	}

	return textutil.Truncate(anchors, domain.MaxAnchors)
}

func matchAnchors(text string, rules []anchorRule, match func(string, []string) bool) []domain.Anchor {
	if text == "" {
		return nil
	}

	var anchors []domain.Anchor
	for _, r := range rules {
		if match(text, r.keywords) {
			anchors = append(anchors, r.anchor)
		}
	}
	return anchors
}

// changingLines returns a sorted copy of the changing lines.
func changingLines(lines []domain.Line) []domain.Line {
	var changing []domain.Line
	for _, l := range lines {
		if l.IsChanging {
			changing = append(changing, l)
		}
	}
	sort.Slice(changing, func(i, j int) bool {
		return changing[i].Position < changing[j].Position
	})
	return changing
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
