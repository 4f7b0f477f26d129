package service

import (
	"sync"
	"time"

	"qudurat_backend/internal/config"
	"qudurat_backend/internal/model"
	"qudurat_backend/internal/repository"
	"qudurat_backend/internal/util"
	"qudurat_backend/pkg/logger"
	"qudurat_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// QuestionSource supplies a section's questions in presentation order. An
// empty slice means the section has no questions; it is not an error.
type QuestionSource interface {
	ListBySection(section model.Section) ([]model.PlacementQuestion, error)
}

// ResultStore persists finalized results, idempotently upserted per user.
type ResultStore interface {
	Upsert(result *model.PlacementResult) error
	FindByUser(userID uint) (*model.PlacementResult, error)
}

// PlacementService runs placement test sessions. Sessions live in memory
// only: abandoning one discards it with no partial commit, and nothing is
// written until finalization.
type PlacementService struct {
	Questions QuestionSource
	Results   ResultStore
	Points    *PointsService
	Notifier  *NotificationService
	UserRepo  *repository.UserRepository
	Cfg       *config.Config

	mu       sync.Mutex
	sessions map[uint]*PlacementSession
}

func NewPlacementService(
	questions QuestionSource,
	results ResultStore,
	points *PointsService,
	notifier *NotificationService,
	userRepo *repository.UserRepository,
	cfg *config.Config,
) *PlacementService {
	return &PlacementService{
		Questions: questions,
		Results:   results,
		Points:    points,
		Notifier:  notifier,
		UserRepo:  userRepo,
		Cfg:       cfg,
		sessions:  make(map[uint]*PlacementSession),
	}
}

// PlacementQuestionView is what a test taker sees: the question without its
// correct option key.
type PlacementQuestionView struct {
	ID           uint          `json:"id"`
	Section      model.Section `json:"section"`
	Number       int           `json:"number"`
	Total        int           `json:"total"`
	Content      string        `json:"content"`
	ContentImage string        `json:"contentImage,omitempty"`
	OptionA      string        `json:"optionA"`
	OptionAImage string        `json:"optionAImage,omitempty"`
	OptionB      string        `json:"optionB"`
	OptionBImage string        `json:"optionBImage,omitempty"`
	OptionC      string        `json:"optionC"`
	OptionCImage string        `json:"optionCImage,omitempty"`
	OptionD      string        `json:"optionD"`
	OptionDImage string        `json:"optionDImage,omitempty"`
}

// PlacementOutcome carries the finalized results and advice handed to the
// caller (and on to the results screen).
type PlacementOutcome struct {
	Quantitative SectionResult `json:"quantitative"`
	Verbal       SectionResult `json:"verbal"`
	Advice       []AdviceItem  `json:"advice"`
	CompletedAt  time.Time     `json:"completedAt"`
}

// AnswerOutcome is the response to one answer submission: either the next
// question or the final results.
type AnswerOutcome struct {
	Finished bool                   `json:"finished"`
	Next     *PlacementQuestionView `json:"next,omitempty"`
	Results  *PlacementOutcome      `json:"results,omitempty"`
}

// Start fetches both sections and opens a fresh session for the user,
// replacing any in-flight one. Returns the first question.
func (s *PlacementService) Start(userID uint) (*PlacementQuestionView, error) {
	quant, err := s.Questions.ListBySection(model.SectionQuantitative)
	if err != nil {
		return nil, err
	}
	verbal, err := s.Questions.ListBySection(model.SectionVerbal)
	if err != nil {
		return nil, err
	}

	session := NewPlacementSession(quant, verbal)
	if session.State() == StateEmpty {
		return nil, util.ErrNoQuestionsAvailable
	}

	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()

	return s.currentView(session)
}

// Answer submits the selected option for the user's current question. When
// the submission finalizes the session, the results are scored, persisted and
// returned; otherwise the next question is returned.
func (s *PlacementService) Answer(userID uint, selected model.OptionKey) (*AnswerOutcome, error) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	s.mu.Unlock()
	if !ok {
		return nil, util.ErrTestNotStarted
	}

	if err := session.Submit(selected); err != nil {
		return nil, err
	}

	if !session.Finalized() {
		view, err := s.currentView(session)
		if err != nil {
			return nil, err
		}
		return &AnswerOutcome{Next: view}, nil
	}

	return &AnswerOutcome{Finished: true, Results: s.finalize(userID, session)}, nil
}

// Abandon discards the user's in-flight session, if any. Nothing has been
// persisted for it, so there is no cleanup beyond dropping the state.
func (s *PlacementService) Abandon(userID uint) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

// Result returns the user's persisted placement result together with advice
// recomputed from its percentages.
func (s *PlacementService) Result(userID uint) (*PlacementOutcome, error) {
	stored, err := s.Results.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	quant := SectionResult{
		Section:    model.SectionQuantitative,
		Correct:    stored.QuantCorrect,
		Total:      stored.QuantTotal,
		Percentage: stored.QuantPercentage,
	}
	verbal := SectionResult{
		Section:    model.SectionVerbal,
		Correct:    stored.VerbalCorrect,
		Total:      stored.VerbalTotal,
		Percentage: stored.VerbalPercentage,
	}

	return &PlacementOutcome{
		Quantitative: quant,
		Verbal:       verbal,
		Advice:       BuildAdvice(quant, verbal),
		CompletedAt:  stored.CompletedAt,
	}, nil
}

// finalize scores the session, drops it from the registry and pushes the
// result across the persistence boundary. The computed outcome stays valid
// even when the write fails; the failure is logged, never retried here.
func (s *PlacementService) finalize(userID uint, session *PlacementSession) *PlacementOutcome {
	quant, verbal := ScoreRecords(session.Records())
	now := time.Now()

	outcome := &PlacementOutcome{
		Quantitative: quant,
		Verbal:       verbal,
		Advice:       BuildAdvice(quant, verbal),
		CompletedAt:  now,
	}

	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()

	result := &model.PlacementResult{
		UserID:           userID,
		QuantCorrect:     quant.Correct,
		QuantTotal:       quant.Total,
		QuantPercentage:  quant.Percentage,
		VerbalCorrect:    verbal.Correct,
		VerbalTotal:      verbal.Total,
		VerbalPercentage: verbal.Percentage,
		CompletedAt:      now,
	}
	if err := s.Results.Upsert(result); err != nil {
		logger.Log.Error("placement result upsert failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}

	monitoring.PlacementCompletions.Inc()
	s.afterFinalize(userID)

	return outcome
}

// afterFinalize handles the side effects of completion: award points, move
// the student into the parent-approval stage and notify the parent. All
// best-effort; failures are logged and do not affect the computed results.
func (s *PlacementService) afterFinalize(userID uint) {
	if s.Points != nil && s.Cfg.Points.PlacementAward > 0 {
		if err := s.Points.Award(userID, s.Cfg.Points.PlacementAward, "placement_completed", ""); err != nil {
			logger.Log.Error("placement points award failed",
				zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	if s.UserRepo == nil {
		return
	}

	if err := s.UserRepo.UpdateApprovalStatus(userID, model.ApprovalPending); err != nil {
		logger.Log.Error("approval status update failed",
			zap.Uint("user_id", userID), zap.Error(err))
		return
	}

	if s.Notifier == nil {
		return
	}

	student, err := s.UserRepo.FindByID(userID)
	if err != nil || student.ParentPhone == "" {
		return
	}
	parent, err := s.UserRepo.FindByPhone(student.ParentPhone)
	if err != nil {
		return
	}
	_ = s.Notifier.Notify(parent.ID, model.NotifyApproval,
		"نتيجة اختبار تحديد المستوى",
		"أكمل "+student.Name+" اختبار تحديد المستوى وينتظر موافقتك.")
}

func (s *PlacementService) currentView(session *PlacementSession) (*PlacementQuestionView, error) {
	q, section, err := session.Current()
	if err != nil {
		return nil, err
	}

	answered, total := session.Progress()
	return &PlacementQuestionView{
		ID:           q.ID,
		Section:      section,
		Number:       answered + 1,
		Total:        total,
		Content:      q.Content,
		ContentImage: q.ContentImage,
		OptionA:      q.OptionA,
		OptionAImage: q.OptionAImage,
		OptionB:      q.OptionB,
		OptionBImage: q.OptionBImage,
		OptionC:      q.OptionC,
		OptionCImage: q.OptionCImage,
		OptionD:      q.OptionD,
		OptionDImage: q.OptionDImage,
	}, nil
}
