package service

import (
	"errors"
	"testing"

	"qudurat_backend/internal/model"
	"qudurat_backend/internal/util"
)

func makeQuestions(section model.Section, correct []model.OptionKey) []model.PlacementQuestion {
	qs := make([]model.PlacementQuestion, len(correct))
	for i, c := range correct {
		qs[i] = model.PlacementQuestion{
			BaseModel:     model.BaseModel{ID: uint(i + 1)},
			Section:       section,
			Order:         i + 1,
			Content:       "q",
			CorrectOption: c,
		}
	}
	return qs
}

func TestSessionWalksQuantitativeThenVerbal(t *testing.T) {
	quant := makeQuestions(model.SectionQuantitative, []model.OptionKey{model.OptionA, model.OptionB})
	verbal := makeQuestions(model.SectionVerbal, []model.OptionKey{model.OptionC})

	s := NewPlacementSession(quant, verbal)
	if s.State() != StateQuantitative {
		t.Fatalf("initial state = %v, want quantitative", s.State())
	}

	_, section, err := s.Current()
	if err != nil || section != model.SectionQuantitative {
		t.Fatalf("Current() = %v, %v; want quantitative question", section, err)
	}

	if err := s.Submit(model.OptionA); err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	if s.State() != StateQuantitative {
		t.Fatalf("state after 1 answer = %v, want quantitative", s.State())
	}

	if err := s.Submit(model.OptionD); err != nil {
		t.Fatalf("submit 2: %v", err)
	}
	if s.State() != StateVerbal {
		t.Fatalf("state after quant exhausted = %v, want verbal", s.State())
	}

	if err := s.Submit(model.OptionC); err != nil {
		t.Fatalf("submit 3: %v", err)
	}
	if !s.Finalized() {
		t.Fatalf("state after last answer = %v, want finalized", s.State())
	}
}

func TestSessionRecordsAppendOnlyInOrder(t *testing.T) {
	quant := makeQuestions(model.SectionQuantitative, []model.OptionKey{model.OptionA, model.OptionB})
	verbal := makeQuestions(model.SectionVerbal, []model.OptionKey{model.OptionC})
	s := NewPlacementSession(quant, verbal)

	answers := []model.OptionKey{model.OptionA, model.OptionD, model.OptionC}
	for i, a := range answers {
		if err := s.Submit(a); err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
		if got := len(s.Records()); got != i+1 {
			t.Fatalf("after submit %d: %d records, want %d", i+1, got, i+1)
		}
	}

	records := s.Records()
	want := []AnsweredRecord{
		{QuestionID: 1, Section: model.SectionQuantitative, Selected: model.OptionA, Correct: true},
		{QuestionID: 2, Section: model.SectionQuantitative, Selected: model.OptionD, Correct: false},
		{QuestionID: 1, Section: model.SectionVerbal, Selected: model.OptionC, Correct: true},
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestSessionEmptyVerbalFinalizesAfterQuantitative(t *testing.T) {
	quant := makeQuestions(model.SectionQuantitative, []model.OptionKey{model.OptionA})
	s := NewPlacementSession(quant, nil)

	if err := s.Submit(model.OptionA); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !s.Finalized() {
		t.Fatalf("state = %v, want finalized with no verbal questions", s.State())
	}
}

func TestSessionEmptyQuantitativeStartsInVerbal(t *testing.T) {
	verbal := makeQuestions(model.SectionVerbal, []model.OptionKey{model.OptionB})
	s := NewPlacementSession(nil, verbal)

	if s.State() != StateVerbal {
		t.Fatalf("state = %v, want verbal", s.State())
	}
	_, section, err := s.Current()
	if err != nil || section != model.SectionVerbal {
		t.Fatalf("Current() = %v, %v; want verbal question", section, err)
	}
}

func TestSessionNoQuestionsAtAll(t *testing.T) {
	s := NewPlacementSession(nil, nil)

	if s.State() != StateEmpty {
		t.Fatalf("state = %v, want empty", s.State())
	}
	if _, _, err := s.Current(); !errors.Is(err, util.ErrNoQuestionsAvailable) {
		t.Fatalf("Current() error = %v, want ErrNoQuestionsAvailable", err)
	}
	if err := s.Submit(model.OptionA); !errors.Is(err, util.ErrNoQuestionsAvailable) {
		t.Fatalf("Submit() error = %v, want ErrNoQuestionsAvailable", err)
	}
}

func TestSessionRejectsBadSelections(t *testing.T) {
	quant := makeQuestions(model.SectionQuantitative, []model.OptionKey{model.OptionA})
	s := NewPlacementSession(quant, nil)

	if err := s.Submit(""); !errors.Is(err, util.ErrNoSelection) {
		t.Fatalf("empty selection error = %v, want ErrNoSelection", err)
	}
	if err := s.Submit("E"); !errors.Is(err, util.ErrInvalidOption) {
		t.Fatalf("invalid selection error = %v, want ErrInvalidOption", err)
	}

	// Rejected submissions must not have advanced or recorded anything.
	if len(s.Records()) != 0 {
		t.Fatalf("records after rejected submissions = %d, want 0", len(s.Records()))
	}
	if s.State() != StateQuantitative {
		t.Fatalf("state after rejected submissions = %v, want quantitative", s.State())
	}
}

func TestSessionRejectsSubmitAfterFinalize(t *testing.T) {
	quant := makeQuestions(model.SectionQuantitative, []model.OptionKey{model.OptionA})
	s := NewPlacementSession(quant, nil)

	if err := s.Submit(model.OptionA); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := s.Submit(model.OptionB); !errors.Is(err, util.ErrTestFinished) {
		t.Fatalf("submit after finalize error = %v, want ErrTestFinished", err)
	}
	if len(s.Records()) != 1 {
		t.Fatalf("records after rejected submit = %d, want 1", len(s.Records()))
	}
}

func TestSessionProgress(t *testing.T) {
	quant := makeQuestions(model.SectionQuantitative, []model.OptionKey{model.OptionA, model.OptionB})
	verbal := makeQuestions(model.SectionVerbal, []model.OptionKey{model.OptionC})
	s := NewPlacementSession(quant, verbal)

	answered, total := s.Progress()
	if answered != 0 || total != 3 {
		t.Fatalf("Progress() = %d/%d, want 0/3", answered, total)
	}

	s.Submit(model.OptionA)
	s.Submit(model.OptionB)
	answered, total = s.Progress()
	if answered != 2 || total != 3 {
		t.Fatalf("Progress() = %d/%d, want 2/3", answered, total)
	}
}
