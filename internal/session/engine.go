package session

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/continha/internal/arith"
	"github.com/abhisek/continha/internal/difficulty"
	"github.com/abhisek/continha/internal/examples"
	"github.com/abhisek/continha/internal/problemgen"
)

// MaxExampleAttempts is how many examples the learner can reject before
// the question is force-resolved. Matches the number of distinct
// narrative templates, so each retry reads differently.
const MaxExampleAttempts = examples.NumVariations

// answerTolerance is the absolute difference under which a numeric
// answer counts as correct. Covers decimal-representation noise without
// accepting genuinely wrong answers.
const answerTolerance = 1e-9

// Engine drives the dialogue protocol over a Session. It is stateless
// itself; all mutable state lives in the Session, whose access the
// Registry serializes.
type Engine struct {
	generator *problemgen.Generator
	policy    *difficulty.Policy
	recorder  Recorder
	logger    *slog.Logger
}

// NewEngine creates an Engine. recorder may be nil (nothing persisted);
// policy may be nil (neutral difficulty).
func NewEngine(generator *problemgen.Generator, policy *difficulty.Policy, recorder Recorder, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		generator: generator,
		policy:    policy,
		recorder:  recorder,
		logger:    logger,
	}
}

// StartResult is the outcome of a successful Start.
type StartResult struct {
	Question   string
	Multiplier float64
	// HistoryReset reports whether the rolling history was cleared
	// because the operation or bracket changed.
	HistoryReset bool
}

// AnswerResult is the outcome of a successful SubmitAnswer.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer int
	Example       string
}

// FeedbackResult is the outcome of a successful SubmitFeedback.
type FeedbackResult struct {
	// Advanced means the question was resolved (understood, or retries
	// exhausted) and the session is Idle again.
	Advanced bool
	// Exhausted means the advance was forced by the retry cap.
	Exhausted bool
	// Example is the next explanation when not advancing.
	Example string
}

// Start validates operation and bracket, resets the rolling history if
// either changed, and poses a new question.
func (e *Engine) Start(ctx context.Context, s *Session, opRaw, bracketRaw string) (*StartResult, error) {
	op, err := arith.ParseOperation(opRaw)
	if err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}
	bracket, err := arith.ParseBracket(bracketRaw)
	if err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	if s.Phase != PhaseIdle {
		// Starting over mid-question is allowed, but never silent: the
		// unresolved question is dropped without a log row.
		e.logger.Warn("abandoning unresolved question",
			"session_id", s.ID, "phase", s.Phase.String(), "question", questionText(s))
	}

	reset := false
	if s.Operation != op || s.Bracket != bracket {
		s.resetHistory()
		reset = true
	}
	s.Operation = op
	s.Bracket = bracket

	feats := difficulty.Features{
		OverallAccuracy: s.OverallAccuracy(),
		RecentAccuracy:  s.RecentAccuracy(op, difficulty.RecentWindow),
		OperationCount:  s.OperationCount(op),
		AgeLowerBound:   bracket.LowerBound(),
	}
	multiplier, used := e.policy.Multiplier(ctx, feats)

	q, err := e.generator.Generate(op, bracket, multiplier)
	if err != nil {
		return nil, err
	}

	s.resetQuestion()
	s.Question = q
	s.Phase = PhaseQuestionPosed
	s.AppliedMultiplier = multiplier
	s.PredictorUsed = used
	s.StartedAt = time.Now()

	return &StartResult{Question: q.Text, Multiplier: multiplier, HistoryReset: reset}, nil
}

// SubmitAnswer parses and scores the learner's answer, then shows the
// first worked example. Valid only while a question is posed.
func (e *Engine) SubmitAnswer(ctx context.Context, s *Session, answerText string) (*AnswerResult, error) {
	switch s.Phase {
	case PhaseQuestionPosed:
		// Proceed.
	case PhaseAwaitingFeedback:
		return nil, validationf("a questão já foi respondida — diga se entendeu o exemplo")
	default:
		return nil, validationf("nenhuma questão ativa — comece com a ação start")
	}

	value, err := ParseAnswer(answerText)
	if err != nil {
		return nil, validationf("não entendi a resposta %q — envie um número", answerText)
	}

	q := s.Question
	correct := math.Abs(value-float64(q.Result)) <= answerTolerance

	s.History = append(s.History, Outcome{Operation: q.Operation, A: q.A, B: q.B, Correct: correct})
	s.TotalAnswered++
	if correct {
		s.TotalCorrect++
	}
	s.SubmittedAnswer = strings.TrimSpace(answerText)
	s.AnswerCorrect = correct

	example := examples.Generate(q.Operation, q.Bracket, q.A, q.B, q.Result, 0)
	s.LastExample = example
	s.AttemptIndex = 0
	s.Attempts = []Attempt{{Example: example}}
	s.Phase = PhaseAwaitingFeedback

	return &AnswerResult{Correct: correct, CorrectAnswer: q.Result, Example: example}, nil
}

// SubmitFeedback records the learner's verdict on the last example and
// either advances (persisting the log row) or shows the next variation.
func (e *Engine) SubmitFeedback(ctx context.Context, s *Session, understood bool) (*FeedbackResult, error) {
	if s.Phase != PhaseAwaitingFeedback {
		return nil, validationf("nenhum exemplo aguardando avaliação")
	}

	s.Attempts[s.AttemptIndex].Understood = understood
	s.Attempts[s.AttemptIndex].Judged = true

	if understood {
		e.persist(ctx, s)
		s.resetQuestion()
		return &FeedbackResult{Advanced: true}, nil
	}

	if s.AttemptIndex+1 < MaxExampleAttempts {
		s.AttemptIndex++
		q := s.Question
		example := examples.Generate(q.Operation, q.Bracket, q.A, q.B, q.Result, s.AttemptIndex)
		s.LastExample = example
		s.Attempts = append(s.Attempts, Attempt{Example: example})
		return &FeedbackResult{Example: example}, nil
	}

	// Retries exhausted: persist and move on regardless.
	e.persist(ctx, s)
	s.resetQuestion()
	return &FeedbackResult{Advanced: true, Exhausted: true}, nil
}

// persist appends the accumulated log row. Failures are logged and
// swallowed: the learner's session must not break because the log disk
// is full.
func (e *Engine) persist(ctx context.Context, s *Session) {
	if e.recorder == nil {
		return
	}

	q := s.Question
	row := Row{
		Timestamp:        time.Now(),
		SessionID:        s.ID,
		Bracket:          s.Bracket,
		Operation:        s.Operation,
		QuestionText:     q.Text,
		OperandA:         q.A,
		OperandB:         q.B,
		Answer:           s.SubmittedAnswer,
		CorrectAnswer:    q.Result,
		Correct:          s.AnswerCorrect,
		Attempts:         append([]Attempt(nil), s.Attempts...),
		DifficultyFactor: s.AppliedMultiplier,
		RecentAccuracy:   s.RecentAccuracy(s.Operation, difficulty.RecentWindow),
		OperationCount:   s.OperationCount(s.Operation),
	}

	if err := e.recorder.Append(ctx, row); err != nil {
		e.logger.Error("failed to persist interaction row",
			"session_id", s.ID, "question", q.Text, "error", err)
	}
}

// ParseAnswer parses a decimal number accepting either comma or dot as
// the decimal separator.
func ParseAnswer(text string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	return strconv.ParseFloat(normalized, 64)
}

func questionText(s *Session) string {
	if s.Question == nil {
		return ""
	}
	return s.Question.Text
}
