package service

import (
	"fmt"
	"math"

	"qudurat_backend/internal/model"
)

// SectionResult summarizes one section of a finalized placement test. It is
// derived from the answer log and never stored independently of it.
type SectionResult struct {
	Section    model.Section `json:"section"`
	Correct    int           `json:"correct"`
	Total      int           `json:"total"`
	Percentage int           `json:"percentage"`
}

// ScoreRecords reduces the answer log into one result per section. Pure and
// idempotent; a section with no records scores {0, 0, 0}.
func ScoreRecords(records []AnsweredRecord) (quant, verbal SectionResult) {
	quant = SectionResult{Section: model.SectionQuantitative}
	verbal = SectionResult{Section: model.SectionVerbal}

	for _, rec := range records {
		switch rec.Section {
		case model.SectionQuantitative:
			quant.Total++
			if rec.Correct {
				quant.Correct++
			}
		case model.SectionVerbal:
			verbal.Total++
			if rec.Correct {
				verbal.Correct++
			}
		}
	}

	quant.Percentage = percentage(quant.Correct, quant.Total)
	verbal.Percentage = percentage(verbal.Correct, verbal.Total)
	return quant, verbal
}

// percentage rounds half up: 1/3 -> 33, 2/3 -> 67. Zero when total is zero.
func percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// AdviceItem is one qualitative feedback message shown with the results.
type AdviceItem struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Tier thresholds and the comparative gap, fixed by the product.
const (
	adviceExcellentMin = 80
	adviceGoodMin      = 60
	adviceFocusGap     = 20
)

const (
	AdviceExcellent        = "excellent"
	AdviceGood             = "good"
	AdviceNeedsImprovement = "needs_improvement"
	AdviceFocus            = "focus"
	AdviceBalanced         = "balanced"
)

// BuildAdvice maps the two section percentages to exactly three items, in
// fixed order: quantitative tier, verbal tier, comparative. When the gap
// between sections exceeds 20 points the comparative item recommends extra
// focus on the weaker section; otherwise it reports balanced performance.
//
// Percentages are expected in [0,100] as produced by ScoreRecords; behavior
// for out-of-range input is unspecified.
func BuildAdvice(quant, verbal SectionResult) []AdviceItem {
	items := make([]AdviceItem, 0, 3)
	items = append(items, tierAdvice(quant), tierAdvice(verbal))

	diff := quant.Percentage - verbal.Percentage
	if diff < 0 {
		diff = -diff
	}

	if diff > adviceFocusGap {
		weaker, stronger := quant, verbal
		if verbal.Percentage < quant.Percentage {
			weaker, stronger = verbal, quant
		}
		items = append(items, AdviceItem{
			Title:    "توصية تخصصية",
			Message:  fmt.Sprintf("أداؤك في القسم %s مميز، لكن القسم %s يحتاج تركيزاً إضافياً. ننصح بتخصيص وقت أكبر للتدرب عليه.", sectionName(stronger.Section), sectionName(weaker.Section)),
			Category: AdviceFocus,
		})
	} else {
		items = append(items, AdviceItem{
			Title:    "أداء متوازن",
			Message:  "مستواك متقارب في القسمين الكمي واللفظي. واصل التدرب عليهما معاً.",
			Category: AdviceBalanced,
		})
	}

	return items
}

func tierAdvice(res SectionResult) AdviceItem {
	name := sectionName(res.Section)
	switch {
	case res.Percentage >= adviceExcellentMin:
		return AdviceItem{
			Title:    "ممتاز",
			Message:  fmt.Sprintf("نتيجتك في القسم %s ممتازة (%d%%). استمر على هذا المستوى.", name, res.Percentage),
			Category: AdviceExcellent,
		}
	case res.Percentage >= adviceGoodMin:
		return AdviceItem{
			Title:    "جيد",
			Message:  fmt.Sprintf("نتيجتك في القسم %s جيدة (%d%%). مع مزيد من التدريب يمكنك الوصول للتميز.", name, res.Percentage),
			Category: AdviceGood,
		}
	default:
		return AdviceItem{
			Title:    "يحتاج إلى تحسين",
			Message:  fmt.Sprintf("نتيجتك في القسم %s (%d%%) تحتاج إلى تحسين. ابدأ بمراجعة الأساسيات.", name, res.Percentage),
			Category: AdviceNeedsImprovement,
		}
	}
}

func sectionName(s model.Section) string {
	if s == model.SectionQuantitative {
		return "الكمي"
	}
	return "اللفظي"
}
