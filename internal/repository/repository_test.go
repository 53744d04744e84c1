package repository

import (
	"context"
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"lms_backend/pkg/database"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory("repo_" + uuid.NewString())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, title string, status model.CourseStatus, instructor string) *model.Course {
	t.Helper()
	c := &model.Course{Title: title, Status: status, InstructorName: instructor}
	if err := NewCourseRepository(db).Create(context.Background(), c); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return c
}

func fiveQuestions() []model.TestQuestion {
	qs := make([]model.TestQuestion, model.QuestionsPerTest)
	for i := range qs {
		qs[i] = model.TestQuestion{
			Question:      "Q",
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectOption: "A",
		}
	}
	return qs
}

func TestCourseRepository_ListWithQuestionCount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	courses := NewCourseRepository(db)
	tests := NewTestRepository(db)

	withTest := seedCourse(t, db, "With test", model.CoursePublished, "Instructor Doe")
	seedCourse(t, db, "Draft", model.CourseDraft, "Instructor Doe")
	if err := tests.CreateQuestionSet(ctx, withTest.ID, fiveQuestions()); err != nil {
		t.Fatalf("CreateQuestionSet() error = %v", err)
	}

	all, err := courses.ListWithQuestionCount(ctx, "")
	if err != nil {
		t.Fatalf("ListWithQuestionCount() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d courses, want 2", len(all))
	}
	if all[0].ID != withTest.ID || !all[0].HasTest {
		t.Errorf("first course = %+v, want id %d with test", all[0], withTest.ID)
	}
	if all[1].HasTest {
		t.Error("course without questions reported has_test")
	}

	published, err := courses.ListWithQuestionCount(ctx, model.CoursePublished)
	if err != nil {
		t.Fatalf("ListWithQuestionCount(published) error = %v", err)
	}
	if len(published) != 1 || published[0].Title != "With test" {
		t.Errorf("published = %+v", published)
	}
}

func TestCourseRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	courses := NewCourseRepository(db)
	c := seedCourse(t, db, "Go", model.CoursePublished, "Instructor Doe")
	other := seedCourse(t, db, "Rust", model.CoursePublished, "Instructor Doe")

	if err := NewTestRepository(db).CreateQuestionSet(ctx, c.ID, fiveQuestions()); err != nil {
		t.Fatalf("CreateQuestionSet() error = %v", err)
	}
	enrollments := NewEnrollmentRepository(db)
	for _, courseID := range []uint{c.ID, other.ID} {
		if err := enrollments.Create(ctx, &model.Enrollment{CourseID: courseID, LearnerName: "alice"}); err != nil {
			t.Fatalf("create enrollment: %v", err)
		}
	}
	attempt := &model.TestAttempt{CourseID: c.ID, LearnerName: "alice", Badge: "Newbie", AttemptedAt: time.Now().UTC()}
	if err := NewAttemptRepository(db).Create(ctx, attempt); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	if err := courses.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	for _, table := range []string{"enrollments", "test_questions", "test_attempts"} {
		var n int64
		if err := db.Table(table).Where("course_id = ?", c.ID).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if n != 0 {
			t.Errorf("%d rows left in %s", n, table)
		}
	}

	if _, err := enrollments.FindByCourseAndLearner(ctx, other.ID, "alice"); err != nil {
		t.Errorf("enrollment of another course removed: %v", err)
	}

	if err := courses.Delete(ctx, c.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second Delete() error = %v, want ErrRecordNotFound", err)
	}
}

func TestEnrollmentRepository_UniquePerLearner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCourse(t, db, "Go", model.CoursePublished, "Instructor Doe")
	repo := NewEnrollmentRepository(db)

	if err := repo.Create(ctx, &model.Enrollment{CourseID: c.ID, LearnerName: "alice"}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	err := repo.Create(ctx, &model.Enrollment{CourseID: c.ID, LearnerName: "alice"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate Create() error = %v, want ErrDuplicatedKey", err)
	}
	if err := repo.Create(ctx, &model.Enrollment{CourseID: c.ID, LearnerName: "bob"}); err != nil {
		t.Errorf("other learner Create() error = %v", err)
	}
}

func TestEnrollmentRepository_SaveProgressAndActivity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	published := seedCourse(t, db, "Published", model.CoursePublished, "Instructor Doe")
	draft := seedCourse(t, db, "Draft", model.CourseDraft, "Instructor Doe")
	foreign := seedCourse(t, db, "Foreign", model.CoursePublished, "Someone Else")
	repo := NewEnrollmentRepository(db)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, courseID := range []uint{published.ID, draft.ID, foreign.ID} {
		e := &model.Enrollment{CourseID: courseID, LearnerName: "alice"}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create enrollment: %v", err)
		}
		e.Advance(base.Add(time.Duration(i) * time.Minute))
		if err := repo.SaveProgress(ctx, e); err != nil {
			t.Fatalf("SaveProgress() error = %v", err)
		}
	}
	// 没有更新时间的报名不计入动态
	if err := repo.Create(ctx, &model.Enrollment{CourseID: published.ID, LearnerName: "bob"}); err != nil {
		t.Fatalf("create enrollment: %v", err)
	}

	got, err := repo.FindByCourseAndLearner(ctx, published.ID, "alice")
	if err != nil {
		t.Fatalf("FindByCourseAndLearner() error = %v", err)
	}
	if got.Progress != model.ProgressStep || got.LastActivityAt == nil {
		t.Errorf("saved enrollment = %+v", got)
	}

	rows, err := repo.ListRecentActivity(ctx, "Instructor Doe", 5)
	if err != nil {
		t.Fatalf("ListRecentActivity() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d activity rows, want 1: %+v", len(rows), rows)
	}
	if rows[0].CourseTitle != "Published" || rows[0].LearnerName != "alice" || rows[0].Progress != 10 {
		t.Errorf("activity row = %+v", rows[0])
	}
}

func TestEnrollmentRepository_ListMyCourses(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tested := seedCourse(t, db, "Tested", model.CoursePublished, "Instructor Doe")
	plain := seedCourse(t, db, "Plain", model.CoursePublished, "Instructor Doe")
	if err := NewTestRepository(db).CreateQuestionSet(ctx, tested.ID, fiveQuestions()); err != nil {
		t.Fatalf("CreateQuestionSet() error = %v", err)
	}

	repo := NewEnrollmentRepository(db)
	for _, id := range []uint{tested.ID, plain.ID} {
		if err := repo.Create(ctx, &model.Enrollment{CourseID: id, LearnerName: "alice"}); err != nil {
			t.Fatalf("create enrollment: %v", err)
		}
	}
	attempt := &model.TestAttempt{CourseID: tested.ID, LearnerName: "alice", CorrectCount: 4, Points: 80, Badge: "Specialist", AttemptedAt: time.Now().UTC()}
	if err := NewAttemptRepository(db).Create(ctx, attempt); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	rows, err := repo.ListMyCourses(ctx, "alice")
	if err != nil {
		t.Fatalf("ListMyCourses() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].QuestionCount != 5 || rows[0].AttemptID == nil || rows[0].Badge == nil || *rows[0].Badge != "Specialist" {
		t.Errorf("tested course row = %+v", rows[0])
	}
	if rows[1].QuestionCount != 0 || rows[1].AttemptID != nil {
		t.Errorf("plain course row = %+v", rows[1])
	}

	other, err := repo.ListMyCourses(ctx, "bob")
	if err != nil {
		t.Fatalf("ListMyCourses(bob) error = %v", err)
	}
	if len(other) != 0 {
		t.Errorf("bob sees %d courses", len(other))
	}
}

func TestTestRepository_CreateQuestionSet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCourse(t, db, "Go", model.CourseDraft, "Instructor Doe")
	repo := NewTestRepository(db)

	if err := repo.CreateQuestionSet(ctx, c.ID, fiveQuestions()); err != nil {
		t.Fatalf("CreateQuestionSet() error = %v", err)
	}
	if err := repo.CreateQuestionSet(ctx, c.ID, fiveQuestions()); !errors.Is(err, util.ErrTestExists) {
		t.Errorf("second CreateQuestionSet() error = %v, want ErrTestExists", err)
	}

	qs, err := repo.ListQuestions(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListQuestions() error = %v", err)
	}
	if len(qs) != model.QuestionsPerTest {
		t.Fatalf("got %d questions, want %d", len(qs), model.QuestionsPerTest)
	}
	for i, q := range qs {
		if q.Position != i+1 || q.CourseID != c.ID {
			t.Errorf("question %d = position %d course %d", i, q.Position, q.CourseID)
		}
	}
}

func TestTestRepository_CreateQuestionSetRollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := seedCourse(t, db, "Go", model.CourseDraft, "Instructor Doe")
	repo := NewTestRepository(db)

	// 触发器拒绝第五题，整批回滚
	qs := fiveQuestions()
	qs[4].Question = ""
	if err := db.Exec("CREATE TRIGGER reject_empty BEFORE INSERT ON test_questions WHEN NEW.question = '' BEGIN SELECT RAISE(ABORT, 'empty question'); END").Error; err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	if err := repo.CreateQuestionSet(ctx, c.ID, qs); err == nil {
		t.Fatal("CreateQuestionSet() should fail")
	}
	count, err := repo.CountQuestions(ctx, c.ID)
	if err != nil {
		t.Fatalf("CountQuestions() error = %v", err)
	}
	if count != 0 {
		t.Errorf("%d questions persisted after failed insert", count)
	}
}

func TestAttemptRepository_ListByLearner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	first := seedCourse(t, db, "First", model.CoursePublished, "Instructor Doe")
	second := seedCourse(t, db, "Second", model.CoursePublished, "Instructor Doe")
	repo := NewAttemptRepository(db)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	attempts := []*model.TestAttempt{
		{CourseID: first.ID, LearnerName: "alice", CorrectCount: 5, Points: 100, Badge: "Expert", AttemptedAt: base},
		{CourseID: second.ID, LearnerName: "alice", CorrectCount: 1, Points: 20, Badge: "Newbie", AttemptedAt: base.Add(time.Hour)},
		{CourseID: first.ID, LearnerName: "bob", CorrectCount: 0, Points: 0, Badge: "Newbie", AttemptedAt: base},
	}
	for _, a := range attempts {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create attempt: %v", err)
		}
	}

	dup := &model.TestAttempt{CourseID: first.ID, LearnerName: "alice", Badge: "Newbie", AttemptedAt: base}
	if err := repo.Create(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate attempt error = %v, want ErrDuplicatedKey", err)
	}

	rows, err := repo.ListByLearner(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByLearner() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].CourseTitle == nil || *rows[0].CourseTitle != "Second" {
		t.Errorf("newest achievement = %+v, want course Second", rows[0])
	}
	if rows[1].Badge != "Expert" {
		t.Errorf("oldest achievement badge = %s, want Expert", rows[1].Badge)
	}

	activity, err := repo.ListRecentActivity(ctx, "Instructor Doe", 5)
	if err != nil {
		t.Fatalf("ListRecentActivity() error = %v", err)
	}
	if len(activity) != 3 {
		t.Errorf("got %d test activity rows, want 3", len(activity))
	}
}
