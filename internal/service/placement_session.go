package service

import (
	"qudurat_backend/internal/model"
	"qudurat_backend/internal/util"
)

// SessionState is the explicit state of a placement test session. The walk is
// strictly quantitative then verbal; Finalized and Empty are terminal.
type SessionState int

const (
	StateQuantitative SessionState = iota
	StateVerbal
	StateFinalized
	StateEmpty
)

func (s SessionState) String() string {
	switch s {
	case StateQuantitative:
		return "quantitative"
	case StateVerbal:
		return "verbal"
	case StateFinalized:
		return "finalized"
	case StateEmpty:
		return "empty"
	}
	return "unknown"
}

// AnsweredRecord captures one submitted answer. Records are created exactly
// once per presented question, in presentation order, and never revised.
type AnsweredRecord struct {
	QuestionID uint            `json:"questionId"`
	Section    model.Section   `json:"section"`
	Selected   model.OptionKey `json:"selected"`
	Correct    bool            `json:"correct"`
}

// PlacementSession holds the in-memory state of one student's placement test:
// the two pre-ordered question lists, the cursor into the active section, and
// the append-only answer log. It trusts the supplied ordering and never sorts.
//
// The session belongs to exactly one test-taking flow; it carries no locking
// of its own.
type PlacementSession struct {
	quant   []model.PlacementQuestion
	verbal  []model.PlacementQuestion
	state   SessionState
	index   int
	records []AnsweredRecord
}

func NewPlacementSession(quant, verbal []model.PlacementQuestion) *PlacementSession {
	s := &PlacementSession{quant: quant, verbal: verbal}
	switch {
	case len(quant) > 0:
		s.state = StateQuantitative
	case len(verbal) > 0:
		s.state = StateVerbal
	default:
		s.state = StateEmpty
	}
	return s
}

func (s *PlacementSession) State() SessionState {
	return s.state
}

func (s *PlacementSession) Finalized() bool {
	return s.state == StateFinalized
}

// Current returns the question awaiting an answer and its section.
func (s *PlacementSession) Current() (*model.PlacementQuestion, model.Section, error) {
	switch s.state {
	case StateQuantitative:
		return &s.quant[s.index], model.SectionQuantitative, nil
	case StateVerbal:
		return &s.verbal[s.index], model.SectionVerbal, nil
	case StateEmpty:
		return nil, "", util.ErrNoQuestionsAvailable
	default:
		return nil, "", util.ErrTestFinished
	}
}

// Submit records the answer to the current question and advances the cursor.
// Recording and advancing are one operation: after a successful Submit the
// session either has another question ready or is finalized. On any error the
// answer log and cursor are left untouched.
func (s *PlacementSession) Submit(selected model.OptionKey) error {
	switch s.state {
	case StateEmpty:
		return util.ErrNoQuestionsAvailable
	case StateFinalized:
		return util.ErrTestFinished
	}

	if selected == "" {
		return util.ErrNoSelection
	}
	if !selected.Valid() {
		return util.ErrInvalidOption
	}

	q, section, err := s.Current()
	if err != nil {
		return err
	}

	s.records = append(s.records, AnsweredRecord{
		QuestionID: q.ID,
		Section:    section,
		Selected:   selected,
		Correct:    selected == q.CorrectOption,
	})

	s.advance()
	return nil
}

// advance moves to the next question, switching sections or finalizing when
// the active section is exhausted. An empty verbal list finalizes straight
// from the quantitative section.
func (s *PlacementSession) advance() {
	s.index++
	switch s.state {
	case StateQuantitative:
		if s.index >= len(s.quant) {
			if len(s.verbal) > 0 {
				s.state = StateVerbal
				s.index = 0
			} else {
				s.state = StateFinalized
			}
		}
	case StateVerbal:
		if s.index >= len(s.verbal) {
			s.state = StateFinalized
		}
	}
}

// Records returns the answer log in submission order. The slice is the
// session's own; callers must not mutate it.
func (s *PlacementSession) Records() []AnsweredRecord {
	return s.records
}

// Progress reports how many questions have been answered out of the total.
func (s *PlacementSession) Progress() (answered, total int) {
	return len(s.records), len(s.quant) + len(s.verbal)
}
