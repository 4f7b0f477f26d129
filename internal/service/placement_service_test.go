package service

import (
	"errors"
	"testing"

	"qudurat_backend/internal/config"
	"qudurat_backend/internal/model"
	"qudurat_backend/internal/util"

	"gorm.io/gorm"
)

type fakeQuestionSource struct {
	quant  []model.PlacementQuestion
	verbal []model.PlacementQuestion
	err    error
}

func (f *fakeQuestionSource) ListBySection(section model.Section) ([]model.PlacementQuestion, error) {
	if f.err != nil {
		return nil, f.err
	}
	if section == model.SectionQuantitative {
		return f.quant, nil
	}
	return f.verbal, nil
}

type fakeResultStore struct {
	saved     map[uint]*model.PlacementResult
	upsertErr error
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{saved: make(map[uint]*model.PlacementResult)}
}

func (f *fakeResultStore) Upsert(result *model.PlacementResult) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.saved[result.UserID] = result
	return nil
}

func (f *fakeResultStore) FindByUser(userID uint) (*model.PlacementResult, error) {
	res, ok := f.saved[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return res, nil
}

func newTestService(questions *fakeQuestionSource, results *fakeResultStore) *PlacementService {
	return NewPlacementService(questions, results, nil, nil, nil, &config.Config{})
}

func testBank() *fakeQuestionSource {
	return &fakeQuestionSource{
		quant:  makeQuestions(model.SectionQuantitative, []model.OptionKey{model.OptionA, model.OptionB, model.OptionC}),
		verbal: makeQuestions(model.SectionVerbal, []model.OptionKey{model.OptionA, model.OptionD}),
	}
}

func TestPlacementFullRun(t *testing.T) {
	store := newFakeResultStore()
	svc := newTestService(testBank(), store)

	first, err := svc.Start(7)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if first.Section != model.SectionQuantitative || first.Number != 1 || first.Total != 5 {
		t.Fatalf("first question = %+v, want quantitative 1/5", first)
	}

	// Quant: 2 of 3 correct. Verbal: 1 of 2 correct.
	answers := []model.OptionKey{model.OptionA, model.OptionB, model.OptionD, model.OptionA, model.OptionB}

	var outcome *AnswerOutcome
	for i, a := range answers {
		outcome, err = svc.Answer(7, a)
		if err != nil {
			t.Fatalf("Answer %d: %v", i+1, err)
		}
		if i < len(answers)-1 {
			if outcome.Finished || outcome.Next == nil {
				t.Fatalf("Answer %d: expected a next question, got %+v", i+1, outcome)
			}
			if outcome.Next.Number != i+2 {
				t.Errorf("Answer %d: next number = %d, want %d", i+1, outcome.Next.Number, i+2)
			}
		}
	}

	if !outcome.Finished || outcome.Results == nil {
		t.Fatalf("final answer outcome = %+v, want finished with results", outcome)
	}

	res := outcome.Results
	if res.Quantitative.Correct != 2 || res.Quantitative.Total != 3 || res.Quantitative.Percentage != 67 {
		t.Errorf("quant result = %+v, want 2/3 = 67%%", res.Quantitative)
	}
	if res.Verbal.Correct != 1 || res.Verbal.Total != 2 || res.Verbal.Percentage != 50 {
		t.Errorf("verbal result = %+v, want 1/2 = 50%%", res.Verbal)
	}
	if len(res.Advice) != 3 {
		t.Errorf("advice items = %d, want 3", len(res.Advice))
	}

	saved, ok := store.saved[7]
	if !ok {
		t.Fatal("finalized result was not persisted")
	}
	if saved.QuantPercentage != 67 || saved.VerbalPercentage != 50 {
		t.Errorf("persisted percentages = %d/%d, want 67/50", saved.QuantPercentage, saved.VerbalPercentage)
	}
}

func TestPlacementQuestionViewHidesCorrectOption(t *testing.T) {
	svc := newTestService(testBank(), newFakeResultStore())

	view, err := svc.Start(1)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if view.OptionA == "" && view.OptionB == "" && view.OptionC == "" && view.OptionD == "" && view.Content == "" {
		t.Fatal("view carries no question material")
	}
	// PlacementQuestionView has no correct-option field; this test documents
	// that the view is what leaves the service boundary.
}

func TestPlacementAnswerWithoutStart(t *testing.T) {
	svc := newTestService(testBank(), newFakeResultStore())

	if _, err := svc.Answer(1, model.OptionA); !errors.Is(err, util.ErrTestNotStarted) {
		t.Fatalf("Answer without Start error = %v, want ErrTestNotStarted", err)
	}
}

func TestPlacementAnswerAfterFinalizeNeedsNewStart(t *testing.T) {
	svc := newTestService(&fakeQuestionSource{
		quant: makeQuestions(model.SectionQuantitative, []model.OptionKey{model.OptionA}),
	}, newFakeResultStore())

	if _, err := svc.Start(1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	outcome, err := svc.Answer(1, model.OptionA)
	if err != nil || !outcome.Finished {
		t.Fatalf("Answer = %+v, %v; want finished", outcome, err)
	}

	// The finalized session is gone; another answer requires a fresh Start.
	if _, err := svc.Answer(1, model.OptionA); !errors.Is(err, util.ErrTestNotStarted) {
		t.Fatalf("Answer after finalize error = %v, want ErrTestNotStarted", err)
	}
}

func TestPlacementStartWithEmptyBank(t *testing.T) {
	svc := newTestService(&fakeQuestionSource{}, newFakeResultStore())

	if _, err := svc.Start(1); !errors.Is(err, util.ErrNoQuestionsAvailable) {
		t.Fatalf("Start error = %v, want ErrNoQuestionsAvailable", err)
	}
}

func TestPlacementAbandonDiscardsSession(t *testing.T) {
	store := newFakeResultStore()
	svc := newTestService(testBank(), store)

	if _, err := svc.Start(1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.Answer(1, model.OptionA); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	svc.Abandon(1)

	if _, err := svc.Answer(1, model.OptionB); !errors.Is(err, util.ErrTestNotStarted) {
		t.Fatalf("Answer after Abandon error = %v, want ErrTestNotStarted", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("abandoned session persisted %d results, want none", len(store.saved))
	}
}

func TestPlacementRetakeOverwritesResult(t *testing.T) {
	store := newFakeResultStore()
	svc := newTestService(&fakeQuestionSource{
		quant: makeQuestions(model.SectionQuantitative, []model.OptionKey{model.OptionA, model.OptionB}),
	}, store)

	run := func(answers ...model.OptionKey) {
		t.Helper()
		if _, err := svc.Start(3); err != nil {
			t.Fatalf("Start: %v", err)
		}
		for _, a := range answers {
			if _, err := svc.Answer(3, a); err != nil {
				t.Fatalf("Answer: %v", err)
			}
		}
	}

	run(model.OptionA, model.OptionB) // 2/2
	if store.saved[3].QuantPercentage != 100 {
		t.Fatalf("first run percentage = %d, want 100", store.saved[3].QuantPercentage)
	}

	run(model.OptionC, model.OptionC) // 0/2
	if store.saved[3].QuantPercentage != 0 {
		t.Fatalf("retake percentage = %d, want 0 (overwritten)", store.saved[3].QuantPercentage)
	}
	if len(store.saved) != 1 {
		t.Fatalf("results stored = %d, want 1 per user", len(store.saved))
	}
}

func TestPlacementOutcomeSurvivesStoreFailure(t *testing.T) {
	store := newFakeResultStore()
	store.upsertErr = errors.New("db down")
	svc := newTestService(&fakeQuestionSource{
		quant: makeQuestions(model.SectionQuantitative, []model.OptionKey{model.OptionA}),
	}, store)

	if _, err := svc.Start(1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	outcome, err := svc.Answer(1, model.OptionA)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !outcome.Finished || outcome.Results == nil {
		t.Fatalf("outcome = %+v, want results despite failed persistence", outcome)
	}
	if outcome.Results.Quantitative.Percentage != 100 {
		t.Errorf("percentage = %d, want 100", outcome.Results.Quantitative.Percentage)
	}
}

func TestPlacementResultRecomputesAdvice(t *testing.T) {
	store := newFakeResultStore()
	store.saved[9] = &model.PlacementResult{
		UserID:           9,
		QuantCorrect:     17,
		QuantTotal:       20,
		QuantPercentage:  85,
		VerbalCorrect:    8,
		VerbalTotal:      20,
		VerbalPercentage: 40,
	}
	svc := newTestService(testBank(), store)

	outcome, err := svc.Result(9)
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if len(outcome.Advice) != 3 {
		t.Fatalf("advice items = %d, want 3", len(outcome.Advice))
	}
	if outcome.Advice[2].Category != AdviceFocus {
		t.Errorf("comparative advice = %s, want focus for a 45-point gap", outcome.Advice[2].Category)
	}
}
