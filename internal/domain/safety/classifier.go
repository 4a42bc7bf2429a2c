package safety

import (
	"github.com/phrazzld/yijing-api/internal/domain"
	"github.com/phrazzld/yijing-api/internal/textutil"
)

// Fixed disclaimers and recommendations per level.
const (
	DisclaimerNormal = "Гадание носит символический характер и служит поводом для размышления, " +
		"а не руководством к действию."
	DisclaimerHealth = "Вопросы здоровья требуют профессиональной оценки. " +
		"Гадание не заменяет медицинскую консультацию."
	DisclaimerLegal = "Юридические вопросы зависят от конкретных обстоятельств и законодательства. " +
		"Гадание не заменяет юридическую помощь."
	DisclaimerDanger = "Если вы или кто-то рядом с вами в опасности, не полагайтесь на гадание " +
		"и немедленно обратитесь за помощью."

	RecommendationHealth = "Обратитесь к врачу или другому квалифицированному медицинскому специалисту."
	RecommendationLegal  = "Проконсультируйтесь с юристом или адвокатом."
	RecommendationDanger = "Позвоните в экстренные службы по номеру 112 или на телефон доверия."
)

// rule is one row of the classification table.
type rule struct {
	level          domain.SafetyLevel
	keywords       []string
	disclaimer     string
	recommendation string
}

// rules is evaluated top to bottom; the first matching row wins.
// Keywords are lower-case substrings, matched without stemming.
var rules = []rule{
	{
		level: domain.SafetyLevelDanger,
		keywords: []string{
			"угроз", "насили", "суицид", "самоубий", "покончить с собой", "убить", "убийств",
			"избива", "бьёт меня", "бьет меня", "преследу", "похищ", "оружи", "не хочу жить",
			"suicide", "violence", "abuse", "threat",
		},
		disclaimer:     DisclaimerDanger,
		recommendation: RecommendationDanger,
	},
	{
		level: domain.SafetyLevelHealth,
		keywords: []string{
			"здоровь", "болезн", "болит", "боли в", "врач", "лечени", "лекарств", "диагноз",
			"симптом", "беремен", "депресс", "хирург", "наркоз", "на операцию", "операцию на",
			"анализы", "анализ крови", "анализов крови", "давление крови", "кровяное давлени",
			"артериальн", "гипертони",
			"health", "illness", "doctor", "disease", "pregnan",
		},
		disclaimer:     DisclaimerHealth,
		recommendation: RecommendationHealth,
	},
	{
		level: domain.SafetyLevelLegal,
		keywords: []string{
			"судебн", "в суд", "суда", "адвокат", "юрист", "закон", "полици", "арест",
			"уголовн", "штраф", "нотариус", "наследств",
			"lawsuit", "lawyer", "court", "police", "legal",
		},
		disclaimer:     DisclaimerLegal,
		recommendation: RecommendationLegal,
	},
}

// Classify assigns a safety level to an optional question.
//
// A blank question is normal. Otherwise the lower-cased question is tested
// against the danger, health and legal keyword sets in that order and the
// first match decides the level. The function is total and deterministic.
func Classify(question string) domain.SafetyCheck {
	normalized := textutil.Normalize(question)
	if normalized == "" {
		return normal()
	}

	for _, r := range rules {
		if textutil.ContainsAny(normalized, r.keywords) {
			return domain.SafetyCheck{
				Level:          r.level,
				Disclaimer:     r.disclaimer,
				Recommendation: r.recommendation,
			}
		}
	}

	return normal()
}

// ClassifyOptional is Classify for a question that may be absent.
func ClassifyOptional(question *string) domain.SafetyCheck {
	if question == nil {
		return normal()
	}
	return Classify(*question)
}

func normal() domain.SafetyCheck {
	return domain.SafetyCheck{
		Level:      domain.SafetyLevelNormal,
		Disclaimer: DisclaimerNormal,
	}
}
