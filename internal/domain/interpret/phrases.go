package interpret

import (
	"strconv"

	"github.com/phrazzld/yijing-api/internal/domain"
)

// Fixed sentences used by the composer.
const (
	StableSituation   = "Ситуация стабильна, значительных изменений не ожидается."
	ChangingLineIntro = "Изменяющаяся черта"
	SeveralChanges    = "Несколько изменений одновременно говорят о периоде заметных перемен."
	QualitiesIntro    = "Ключевые качества нового положения"
	TrendClosing      = "Так ситуация будет развиваться, если изменения пойдут своим ходом."
	InnerVoice        = "Прислушайтесь к своему внутреннему голосу."
)

// changingCount names the number of changing lines when no line texts are
// available.
func changingCount(n int) string {
	return "Количество изменяющихся аспектов ситуации: " + strconv.Itoa(n) + "."
}

// cluster maps a keyword set to one canned piece of advice.
type cluster struct {
	keywords []string
	advice   string
}

// practicalClusters are checked in order; every matching cluster adds its
// advice.
var practicalClusters = []cluster{
	{
		keywords: []string{"терпен", "ожидан", "ждать", "выжида", "подожд", "patience", "wait"},
		advice:   "Не торопите события: сейчас время терпения и ожидания.",
	},
	{
		keywords: []string{"осторожн", "опасн", "риск", "caution", "danger"},
		advice:   "Действуйте осмотрительно и избегайте лишнего риска.",
	},
	{
		keywords: []string{"действ", "активн", "движен", "решительн", "action", "act "},
		advice:   "Сделайте конкретный шаг: момент благоприятен для действия.",
	},
	{
		keywords: []string{"гармони", "сотруднич", "союз", "вместе", "согласи", "harmony", "cooperat"},
		advice:   "Ищите согласия и опирайтесь на поддержку окружающих.",
	},
}

// Mood keyword sets. Danger is checked before success.
var (
	cautiousKeywords = []string{
		"опасн", "трудност", "трудн", "препятств", "затруднен", "угроз", "упадок", "истощ",
		"danger", "difficult", "obstacle",
	}
	opportunityKeywords = []string{
		"успех", "благоприят", "изобили", "удач", "процвет", "расцвет",
		"success", "favorable", "favourable", "abundance",
	}
)

// anchorRule maps a keyword group to an anchor.
type anchorRule struct {
	anchor   domain.Anchor
	keywords []string
}

// imageAnchors are checked in order against the hexagram image. Keywords
// are whole word forms: stems like "гор" would also hit "горит".
var imageAnchors = []anchorRule{
	{anchor: domain.AnchorWave, keywords: []string{
		"вода", "воды", "воде", "воду", "водой", "водою",
		"море", "моря", "морю", "морем", "озеро", "озера", "озеру", "озером", "озере",
		"water", "waters", "sea", "lake",
	}},
	{anchor: domain.AnchorMountain, keywords: []string{
		"гора", "горы", "гору", "горой", "горою", "горам", "горами", "горах",
		"mountain", "mountains",
	}},
	{anchor: domain.AnchorLightning, keywords: []string{
		"гром", "грома", "грому", "громом", "громе",
		"молния", "молнии", "молнию", "молнией",
		"thunder", "lightning",
	}},
	{anchor: domain.AnchorSun, keywords: []string{
		"небо", "неба", "небу", "небом", "небе", "небеса",
		"солнце", "солнца", "солнцу", "солнцем",
		"огонь", "огня", "огню", "огнём", "огнем", "огне",
		"пламя", "пламени", "пламенем",
		"sky", "heaven", "sun", "fire", "flame",
	}},
}

// qualityAnchors are the fallback when the image yields nothing.
var qualityAnchors = []anchorRule{
	{anchor: domain.AnchorWave, keywords: []string{"движен", "активн", "действ", "movement", "activity"}},
	{anchor: domain.AnchorMountain, keywords: []string{"стабильн", "устойчив", "спокой", "покой", "stability", "calm"}},
}
