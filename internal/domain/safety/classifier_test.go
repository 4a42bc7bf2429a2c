package safety

import (
	"strings"
	"testing"

	"github.com/phrazzld/yijing-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		question       string
		expectedLevel  domain.SafetyLevel
		recommendation string
	}{
		{
			name:          "empty question",
			question:      "",
			expectedLevel: domain.SafetyLevelNormal,
		},
		{
			name:          "whitespace question",
			question:      "   \n\t",
			expectedLevel: domain.SafetyLevelNormal,
		},
		{
			name:          "ordinary question",
			question:      "Стоит ли мне менять работу этой осенью?",
			expectedLevel: domain.SafetyLevelNormal,
		},
		{
			name:           "danger phrase",
			question:       "у меня срочная угроза безопасности",
			expectedLevel:  domain.SafetyLevelDanger,
			recommendation: RecommendationDanger,
		},
		{
			name:           "danger wins over health and legal",
			question:       "Угроза от соседа, болит спина, нужен адвокат",
			expectedLevel:  domain.SafetyLevelDanger,
			recommendation: RecommendationDanger,
		},
		{
			name:           "health wins over legal",
			question:       "Врач или юрист: к кому идти?",
			expectedLevel:  domain.SafetyLevelHealth,
			recommendation: RecommendationHealth,
		},
		{
			name:           "legal",
			question:       "Выиграю ли я дело в суде? Нужен ли адвокат?",
			expectedLevel:  domain.SafetyLevelLegal,
			recommendation: RecommendationLegal,
		},
		{
			name:           "case insensitive",
			question:       "ЗДОРОВЬЕ мамы",
			expectedLevel:  domain.SafetyLevelHealth,
			recommendation: RecommendationHealth,
		},
		{
			name:          "market analysis is not a medical test",
			question:      "Анализ рынка благоприятен?",
			expectedLevel: domain.SafetyLevelNormal,
		},
		{
			name:          "bank operations are not surgery",
			question:      "Пройдут ли банковские операции без задержек?",
			expectedLevel: domain.SafetyLevelNormal,
		},
		{
			name:          "pressure at work is not blood pressure",
			question:      "Давление на работе ослабнет?",
			expectedLevel: domain.SafetyLevelNormal,
		},
		{
			name:           "medical tests",
			question:       "Стоит ли сдавать анализы?",
			expectedLevel:  domain.SafetyLevelHealth,
			recommendation: RecommendationHealth,
		},
		{
			name:           "surgery",
			question:       "Мне назначили операцию на колене",
			expectedLevel:  domain.SafetyLevelHealth,
			recommendation: RecommendationHealth,
		},
		{
			name:           "blood pressure",
			question:       "Скачет артериальное давление, что делать?",
			expectedLevel:  domain.SafetyLevelHealth,
			recommendation: RecommendationHealth,
		},
		{
			name:          "fate is not a court",
			question:      "Какова моя судьба?",
			expectedLevel: domain.SafetyLevelNormal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			check := Classify(tc.question)
			assert.Equal(t, tc.expectedLevel, check.Level)
			assert.Equal(t, tc.recommendation, check.Recommendation)
			assert.NotEmpty(t, check.Disclaimer)
		})
	}
}

func TestClassify_NormalHasNoRecommendation(t *testing.T) {
	t.Parallel()

	absent := ClassifyOptional(nil)
	empty := Classify("")

	assert.Equal(t, domain.SafetyLevelNormal, absent.Level)
	assert.False(t, absent.HasRecommendation())
	assert.Equal(t, absent, empty)
	assert.Equal(t, DisclaimerNormal, empty.Disclaimer)
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	q := "Нужно ли идти к врачу?"
	assert.Equal(t, Classify(q), Classify(q))
}

func TestRules_KeywordsAreLowerCase(t *testing.T) {
	t.Parallel()

	for _, r := range rules {
		for _, kw := range r.keywords {
			assert.Equal(t, kw, strings.ToLower(kw), "keyword %q of %s must be lower-case", kw, r.level)
		}
	}
}
