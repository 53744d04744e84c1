package service

import (
	"lms_backend/internal/config"
	"lms_backend/internal/repository"
	"lms_backend/pkg/database"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type testEnv struct {
	DB       *gorm.DB
	Courses  *CourseService
	Learners *LearnerService
	Tests    *TestService
	Activity *ActivityService
	Clock    *fakeClock
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return buildTestEnv(t, nil)
}

// newRedisTestEnv 课程目录缓存接入 miniredis
func newRedisTestEnv(t *testing.T) (*testEnv, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return buildTestEnv(t, newRedisClient(t, mr)), mr
}

func newRedisClient(t *testing.T, mr *miniredis.Miniredis) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func buildTestEnv(t *testing.T, rdb *redis.Client) *testEnv {
	t.Helper()
	db, err := database.OpenMemory("svc_" + uuid.NewString())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	testRepo := repository.NewTestRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	storage := NewStorageService(&config.StorageConfig{Type: "local", LocalPath: t.TempDir()})
	catalog := NewCatalogCache(rdb, time.Minute)

	clock := &fakeClock{t: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	learners := NewLearnerService(courseRepo, enrollmentRepo, attemptRepo, catalog)
	learners.now = clock.Now
	tests := NewTestService(courseRepo, testRepo, attemptRepo, catalog)
	tests.now = clock.Now

	return &testEnv{
		DB:       db,
		Courses:  NewCourseService(courseRepo, storage, catalog),
		Learners: learners,
		Tests:    tests,
		Activity: NewActivityService(enrollmentRepo, attemptRepo),
		Clock:    clock,
	}
}

// validTests 正确答案依次为 A B C D A
func validTests() CreateTestsRequest {
	items := make([]TestItemRequest, 5)
	for i := range items {
		items[i] = TestItemRequest{
			Question:      "Question text",
			Options:       []string{"one", "two", "three", "four"},
			CorrectOption: float64(i % 4),
		}
	}
	return CreateTestsRequest{Tests: items}
}
