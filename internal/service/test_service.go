package service

import (
	"context"
	"errors"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"
	"lms_backend/pkg/tracing"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TestService struct {
	CourseRepo  *repository.CourseRepository
	TestRepo    *repository.TestRepository
	AttemptRepo *repository.AttemptRepository
	Catalog     *CatalogCache

	now func() time.Time
}

func NewTestService(
	courseRepo *repository.CourseRepository,
	testRepo *repository.TestRepository,
	attemptRepo *repository.AttemptRepository,
	catalog *CatalogCache,
) *TestService {
	return &TestService{
		CourseRepo:  courseRepo,
		TestRepo:    testRepo,
		AttemptRepo: attemptRepo,
		Catalog:     catalog,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// TestItemRequest correct_option 为选项下标 0-3
type TestItemRequest struct {
	Question      string      `json:"question"`
	Options       []string    `json:"options"`
	CorrectOption interface{} `json:"correct_option" swaggertype:"integer"`
}

type CreateTestsRequest struct {
	Tests []TestItemRequest `json:"tests" binding:"required"`
}

type CreateTestsResult struct {
	Message  string `json:"message"`
	CourseID uint   `json:"course_id"`
}

type AnswerRequest struct {
	QuestionID interface{} `json:"question_id" swaggertype:"integer"`
	Answer     interface{} `json:"answer" swaggertype:"string"`
}

type SubmitTestRequest struct {
	Answers []AnswerRequest `json:"answers" binding:"required"`
}

type AttemptStatus struct {
	Attempted    bool    `json:"attempted"`
	CorrectCount *int    `json:"correct_count,omitempty"`
	Points       *int    `json:"points,omitempty"`
	Badge        *string `json:"badge,omitempty"`
}

// optionIndex 只接受取值为 0-3 的整数
func optionIndex(v interface{}) (int, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	default:
		return 0, false
	}
	if f != math.Trunc(f) || f < 0 || f >= float64(len(model.OptionLetters)) {
		return 0, false
	}
	return int(f), true
}

// questionID JSON 数字形式的正整数 ID，其他形式视为无法匹配
func questionID(v interface{}) (uint, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case uint:
		return n, n > 0
	default:
		return 0, false
	}
	if f != math.Trunc(f) || f <= 0 || f > math.MaxUint32 {
		return 0, false
	}
	return uint(f), true
}

func buildQuestions(items []TestItemRequest) ([]model.TestQuestion, error) {
	if len(items) != model.QuestionsPerTest {
		return nil, util.NewValidationError("Exactly %d questions required", model.QuestionsPerTest)
	}

	questions := make([]model.TestQuestion, 0, len(items))
	for i, item := range items {
		n := i + 1
		if len(item.Options) != len(model.OptionLetters) {
			return nil, util.NewValidationError("Question %d: options must have exactly 4 items", n)
		}
		idx, ok := optionIndex(item.CorrectOption)
		if !ok {
			return nil, util.NewValidationError("Question %d: correct_option must be 0, 1, 2, or 3", n)
		}
		text := strings.TrimSpace(item.Question)
		if text == "" {
			return nil, util.NewValidationError("Question %d: question text is required", n)
		}
		questions = append(questions, model.TestQuestion{
			Question:      text,
			OptionA:       item.Options[0],
			OptionB:       item.Options[1],
			OptionC:       item.Options[2],
			OptionD:       item.Options[3],
			CorrectOption: model.OptionLetters[idx],
		})
	}
	return questions, nil
}

// CreateTests 整套题目要么全部写入，要么都不写入
func (s *TestService) CreateTests(ctx context.Context, courseID uint, req CreateTestsRequest) (*CreateTestsResult, error) {
	if _, err := findCourse(ctx, s.CourseRepo, courseID); err != nil {
		return nil, err
	}

	count, err := s.TestRepo.CountQuestions(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		return nil, util.ErrTestExists
	}

	questions, err := buildQuestions(req.Tests)
	if err != nil {
		return nil, err
	}

	if err := s.TestRepo.CreateQuestionSet(ctx, courseID, questions); err != nil {
		if errors.Is(err, util.ErrTestExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create question set: %w", err)
	}

	s.Catalog.Invalidate(ctx)
	logger.Log.Info("test created", zap.Uint("course_id", courseID))
	return &CreateTestsResult{Message: "Test created successfully", CourseID: courseID}, nil
}

// Questions 返回不含答案的题目，课程没有题目时为空列表
func (s *TestService) Questions(ctx context.Context, courseID uint) ([]model.PublicQuestion, error) {
	qs, err := s.TestRepo.ListQuestions(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	public := make([]model.PublicQuestion, 0, len(qs))
	for _, q := range qs {
		public = append(public, q.Public())
	}
	return public, nil
}

// Submit 每位学员每门课程只能提交一次
func (s *TestService) Submit(ctx context.Context, learner string, courseID uint, req SubmitTestRequest) (*model.TestResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "TestService.Submit")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("course.id", int64(courseID)),
		attribute.String("learner", learner),
	)

	_, err := s.AttemptRepo.FindByCourseAndLearner(ctx, courseID, learner)
	if err == nil {
		return nil, util.ErrAlreadyAttempted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find attempt: %w", err)
	}

	questions, err := s.TestRepo.ListQuestions(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if len(questions) != model.QuestionsPerTest {
		return nil, util.ErrTestIncomplete
	}

	// 同一题目多次作答时以最后一次为准
	answers := make(map[uint]string, len(req.Answers))
	for _, a := range req.Answers {
		if id, ok := questionID(a.QuestionID); ok {
			answers[id] = NormalizeAnswer(a.Answer)
		}
	}

	result := Score(CountCorrect(questions, answers))
	span.SetAttributes(
		attribute.Int("score.correct", result.CorrectCount),
		attribute.String("score.badge", result.Badge),
	)

	attempt := &model.TestAttempt{
		CourseID:     courseID,
		LearnerName:  learner,
		CorrectCount: result.CorrectCount,
		Points:       result.Points,
		Badge:        result.Badge,
		AttemptedAt:  s.now(),
	}
	if err := s.AttemptRepo.Create(ctx, attempt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyAttempted
		}
		return nil, fmt.Errorf("create attempt: %w", err)
	}

	monitoring.TestSubmissions.WithLabelValues(result.Badge).Inc()
	logger.Log.Info("test submitted",
		zap.Uint("course_id", courseID),
		zap.String("learner", learner),
		zap.Int("points", result.Points),
		zap.String("badge", result.Badge))
	return &result, nil
}

// Attempt 返回已保存的结果，不重新计分
func (s *TestService) Attempt(ctx context.Context, learner string, courseID uint) (*AttemptStatus, error) {
	attempt, err := s.AttemptRepo.FindByCourseAndLearner(ctx, courseID, learner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &AttemptStatus{Attempted: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find attempt: %w", err)
	}
	return &AttemptStatus{
		Attempted:    true,
		CorrectCount: &attempt.CorrectCount,
		Points:       &attempt.Points,
		Badge:        &attempt.Badge,
	}, nil
}
