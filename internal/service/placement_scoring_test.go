package service

import (
	"strings"
	"testing"

	"qudurat_backend/internal/model"
)

func TestPercentageRoundsHalfUp(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13}, // 12.5 rounds up
		{3, 8, 38}, // 37.5 rounds up
		{1, 6, 17},
		{4, 7, 57},
	}

	for _, tt := range tests {
		if got := percentage(tt.correct, tt.total); got != tt.want {
			t.Errorf("percentage(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestScoreRecordsPartitionsBySection(t *testing.T) {
	records := []AnsweredRecord{
		{QuestionID: 1, Section: model.SectionQuantitative, Selected: model.OptionA, Correct: true},
		{QuestionID: 2, Section: model.SectionQuantitative, Selected: model.OptionB, Correct: false},
		{QuestionID: 3, Section: model.SectionQuantitative, Selected: model.OptionC, Correct: true},
		{QuestionID: 4, Section: model.SectionVerbal, Selected: model.OptionD, Correct: false},
		{QuestionID: 5, Section: model.SectionVerbal, Selected: model.OptionA, Correct: false},
	}

	quant, verbal := ScoreRecords(records)

	if quant.Correct != 2 || quant.Total != 3 || quant.Percentage != 67 {
		t.Errorf("quant = %+v, want 2/3 = 67%%", quant)
	}
	if verbal.Correct != 0 || verbal.Total != 2 || verbal.Percentage != 0 {
		t.Errorf("verbal = %+v, want 0/2 = 0%%", verbal)
	}
}

func TestScoreRecordsIsDeterministic(t *testing.T) {
	records := []AnsweredRecord{
		{QuestionID: 1, Section: model.SectionQuantitative, Correct: true},
		{QuestionID: 2, Section: model.SectionVerbal, Correct: true},
	}

	q1, v1 := ScoreRecords(records)
	q2, v2 := ScoreRecords(records)
	if q1 != q2 || v1 != v2 {
		t.Fatalf("same records scored differently: %+v/%+v vs %+v/%+v", q1, v1, q2, v2)
	}
}

func TestScoreRecordsEmptyLog(t *testing.T) {
	quant, verbal := ScoreRecords(nil)
	if quant.Total != 0 || quant.Percentage != 0 || verbal.Total != 0 || verbal.Percentage != 0 {
		t.Fatalf("empty log scored %+v / %+v, want zeros", quant, verbal)
	}
}

func section(s model.Section, pct int) SectionResult {
	return SectionResult{Section: s, Percentage: pct}
}

func TestBuildAdviceAlwaysThreeItemsInFixedOrder(t *testing.T) {
	for _, pcts := range [][2]int{{0, 0}, {100, 100}, {85, 40}, {59, 61}} {
		items := BuildAdvice(
			section(model.SectionQuantitative, pcts[0]),
			section(model.SectionVerbal, pcts[1]),
		)
		if len(items) != 3 {
			t.Fatalf("BuildAdvice(%d, %d) returned %d items, want 3", pcts[0], pcts[1], len(items))
		}
	}
}

func TestBuildAdviceTierThresholds(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, AdviceExcellent},
		{80, AdviceExcellent},
		{79, AdviceGood},
		{60, AdviceGood},
		{59, AdviceNeedsImprovement},
		{0, AdviceNeedsImprovement},
	}

	for _, tt := range tests {
		items := BuildAdvice(
			section(model.SectionQuantitative, tt.pct),
			section(model.SectionVerbal, tt.pct),
		)
		if items[0].Category != tt.want {
			t.Errorf("quant tier at %d%% = %s, want %s", tt.pct, items[0].Category, tt.want)
		}
		if items[1].Category != tt.want {
			t.Errorf("verbal tier at %d%% = %s, want %s", tt.pct, items[1].Category, tt.want)
		}
	}
}

func TestBuildAdviceComparativeGap(t *testing.T) {
	tests := []struct {
		name         string
		quant, verbal int
		want         string
	}{
		{"verbal much weaker", 85, 60, AdviceFocus},
		{"quant much weaker", 40, 90, AdviceFocus},
		{"close scores", 70, 75, AdviceBalanced},
		{"gap of exactly twenty", 80, 60, AdviceBalanced},
		{"gap of twenty one", 81, 60, AdviceFocus},
		{"equal scores", 50, 50, AdviceBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := BuildAdvice(
				section(model.SectionQuantitative, tt.quant),
				section(model.SectionVerbal, tt.verbal),
			)
			if items[2].Category != tt.want {
				t.Errorf("comparative for %d/%d = %s, want %s", tt.quant, tt.verbal, items[2].Category, tt.want)
			}
		})
	}
}

func TestBuildAdviceFocusNamesWeakerSection(t *testing.T) {
	items := BuildAdvice(
		section(model.SectionQuantitative, 85),
		section(model.SectionVerbal, 40),
	)

	msg := items[2].Message
	if items[2].Category != AdviceFocus {
		t.Fatalf("category = %s, want focus", items[2].Category)
	}
	// The stronger section is praised first, the weaker one is the target.
	if want := "الكمي"; !containsBefore(msg, want, "اللفظي") {
		t.Errorf("focus message should praise %q before targeting the weaker section: %q", want, msg)
	}
}

// containsBefore reports whether a appears in s before b.
func containsBefore(s, a, b string) bool {
	ia := strings.Index(s, a)
	ib := strings.Index(s, b)
	return ia >= 0 && ib >= 0 && ia < ib
}
