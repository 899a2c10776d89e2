package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coursepro_backend/internal/app"
	"coursepro_backend/internal/config"
	"coursepro_backend/internal/model"
	"coursepro_backend/pkg/database"
	"coursepro_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	logger.Log = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: "test"},
		JWT:    config.JWTConfig{Secret: "test-secret-test-secret-test-secret", ExpireTime: time.Hour},
	}
	return app.NewRouter(db, cfg), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createUser(t *testing.T, r *gin.Engine, email, password string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"full_name": "Juan Dela Cruz",
		"email":     email,
		"password":  password,
		"strand":    "STEM",
		"gwa":       92.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["user_id"].(float64))
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestUserLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	id := createUser(t, r, "juan@example.com", "secret123")

	// duplicate email conflicts
	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"full_name": "Another Juan",
		"email":     "juan@example.com",
		"password":  "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already exists", decode(t, w)["error"])

	// full name is split and recomposed, username defaults to the local part
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)
	assert.Equal(t, "Juan", user["first_name"])
	assert.Equal(t, "Dela Cruz", user["last_name"])
	assert.Equal(t, "Juan Dela Cruz", user["full_name"])
	assert.Equal(t, "juan", user["username"])
	assert.Nil(t, user["password_hash"])

	// partial update
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/users/%d", id), gin.H{"strand": "HUMSS"})
	require.Equal(t, http.StatusOK, w.Code)

	// empty update is rejected
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/users/%d", id), gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No fields to update", decode(t, w)["error"])

	// list carries the pagination block
	w = doJSON(t, r, http.MethodGet, "/api/users?page=1&limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	pg := list["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pg["page"])
	assert.Equal(t, float64(5), pg["limit"])
	assert.Equal(t, float64(1), pg["total"])
	assert.Equal(t, float64(1), pg["pages"])

	// deactivate, then delete
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/users/%d/status", id), gin.H{"is_active": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deactivated successfully", decode(t, w)["message"])

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["error"])
}

func TestUserSearchAndFilter(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"full_name": "Maria Santos", "email": "maria@example.com",
		"password": "secret123", "strand": "ABM",
	})
	createUser(t, r, "juan@example.com", "secret123")

	w := doJSON(t, r, http.MethodGet, "/api/users?search=MARIA", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	assert.Len(t, list["items"], 1)

	w = doJSON(t, r, http.MethodGet, "/api/users?strand=STEM", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decode(t, w)
	assert.Len(t, list["items"], 1)
}

func TestLoginFlow(t *testing.T) {
	r, db := newTestRouter(t)
	id := createUser(t, r, "login@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "login@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	token := body["token"].(string)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Login successful", body["message"])

	// last_login is stamped
	var user model.User
	require.NoError(t, db.First(&user, "user_id = ?", id).Error)
	assert.NotNil(t, user.LastLogin)

	// wrong password and unknown email are indistinguishable
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "login@example.com", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPass := decode(t, w)["error"]

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "nobody@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPass, decode(t, w)["error"])
	assert.Equal(t, "Invalid email or password", wrongPass)

	// bearer token resolves the profile
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "login@example.com", profile["email"])

	// deactivated accounts cannot log in
	doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/users/%d/status", id), gin.H{"is_active": false})
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "login@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Account is deactivated", decode(t, w)["error"])
}

func TestCourseValidationAndCRUD(t *testing.T) {
	r, _ := newTestRouter(t)

	// minimum_gwa outside [75,100] fails binding
	w := doJSON(t, r, http.MethodPost, "/api/courses", gin.H{
		"course_name": "BS Underwater Basketweaving", "minimum_gwa": 50,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/courses", gin.H{
		"course_name":     "BS Architecture",
		"description":     "Design of buildings and structures",
		"required_strand": "STEM",
		"minimum_gwa":     84,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	courseID := uint(decode(t, w)["course_id"].(float64))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/courses/%d", courseID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BS Architecture", decode(t, w)["course_name"])

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/courses/%d", courseID), gin.H{"minimum_gwa": 86})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/courses/%d", courseID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/courses/%d", courseID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func nestedTestPayload() gin.H {
	return gin.H{
		"test_name": "Aptitude Assessment",
		"test_type": "assessment",
		"questions": []gin.H{
			{
				"question_text": "What is 2 + 2?",
				"question_type": "multiple_choice",
				"options": []gin.H{
					{"option_text": "3"},
					{"option_text": "4", "is_correct": true},
				},
			},
			{
				"question_text": "The earth is flat.",
				"question_type": "true_false",
				"options": []gin.H{
					{"option_text": "True"},
					{"option_text": "False", "is_correct": true},
				},
			},
		},
	}
}

func TestTestLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tests", nestedTestPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	testID := uint(decode(t, w)["test_id"].(float64))

	// a test without questions is rejected
	w = doJSON(t, r, http.MethodPost, "/api/tests", gin.H{"test_name": "Empty", "questions": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// get assembles ordered questions and options
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tests/%d", testID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	questions := body["questions"].([]interface{})
	require.Len(t, questions, 2)
	q1 := questions[0].(map[string]interface{})
	assert.Equal(t, float64(1), q1["question_order"])
	assert.Len(t, q1["options"], 2)
	q2 := questions[1].(map[string]interface{})
	assert.Equal(t, float64(2), q2["question_order"])

	// appended question lands at order 3
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/tests/%d/questions", testID), gin.H{
		"question_text": "Pick one.",
		"options":       []gin.H{{"option_text": "A"}, {"option_text": "B"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	questionID := uint(decode(t, w)["question_id"].(float64))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tests/%d/questions", testID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	questions = decode(t, w)["questions"].([]interface{})
	require.Len(t, questions, 3)
	last := questions[2].(map[string]interface{})
	assert.Equal(t, float64(3), last["question_order"])

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/tests/questions/%d", questionID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// deleting again is a 404
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/tests/questions/%d", questionID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/tests/%d", testID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tests/%d", testID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuestionDeleteRemovesOptions(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tests", nestedTestPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	testID := uint(decode(t, w)["test_id"].(float64))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tests/%d", testID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	questions := decode(t, w)["questions"].([]interface{})
	firstID := uint(questions[0].(map[string]interface{})["question_id"].(float64))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/tests/questions/%d", firstID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orphaned int64
	db.Model(&model.Option{}).Where("question_id = ?", firstID).Count(&orphaned)
	assert.Zero(t, orphaned)
}

func submitSetup(t *testing.T, r *gin.Engine) (userID, testID uint) {
	t.Helper()
	userID = createUser(t, r, "student@example.com", "secret123")

	for i, name := range []string{"BS Computer Science", "BS Information Technology", "BS Business Administration"} {
		w := doJSON(t, r, http.MethodPost, "/api/courses", gin.H{
			"course_name":     name,
			"required_strand": "STEM",
			"minimum_gwa":     75 + i,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/tests", nestedTestPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	testID = uint(decode(t, w)["test_id"].(float64))
	return userID, testID
}

func TestSubmitAttemptGeneratesRecommendation(t *testing.T) {
	r, db := newTestRouter(t)
	userID, testID := submitSetup(t, r)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/tests/%d/submit", testID), gin.H{
		"user_id":         userID,
		"score":           17,
		"total_questions": 20,
		"time_taken":      300,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	attemptID := uint(decode(t, w)["attempt_id"].(float64))
	assert.NotZero(t, attemptID)

	// an 85% score buckets into the first strand-matched course
	var rec model.Recommendation
	require.NoError(t, db.First(&rec, "user_id = ?", userID).Error)
	require.NotNil(t, rec.AttemptID)
	assert.Equal(t, attemptID, *rec.AttemptID)
	assert.Equal(t, model.RecommendationPending, rec.Status)
	assert.Equal(t, "Based on your 85% score, we recommend BS Computer Science", rec.Reasoning)

	var course model.Course
	require.NoError(t, db.First(&course, "course_id = ?", rec.CourseID).Error)
	assert.Equal(t, "BS Computer Science", course.CourseName)

	// attempts list joins the student
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tests/%d/attempts", testID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 1)
	row := items[0].(map[string]interface{})
	assert.Equal(t, "Juan Dela Cruz", row["user_name"])
	assert.Equal(t, "student@example.com", row["user_email"])
}

func TestSubmitAttemptUnknownUserOrTest(t *testing.T) {
	r, _ := newTestRouter(t)
	userID, testID := submitSetup(t, r)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/tests/%d/submit", testID), gin.H{
		"user_id": 9999, "score": 5, "total_questions": 10,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["error"])

	w = doJSON(t, r, http.MethodPost, "/api/tests/9999/submit", gin.H{
		"user_id": userID, "score": 5, "total_questions": 10,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Test not found", decode(t, w)["error"])
}

func TestRecommendationStatusFlow(t *testing.T) {
	r, db := newTestRouter(t)
	userID, testID := submitSetup(t, r)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/tests/%d/submit", testID), gin.H{
		"user_id": userID, "score": 13, "total_questions": 20,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var rec model.Recommendation
	require.NoError(t, db.First(&rec, "user_id = ?", userID).Error)

	// invalid status rejected
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/recommendations/%d/status", rec.RecommendationID), gin.H{"status": "maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/recommendations/%d/status", rec.RecommendationID), gin.H{"status": "accepted"})
	require.Equal(t, http.StatusOK, w.Code)

	// joined detail row
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/recommendations/%d", rec.RecommendationID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	row := decode(t, w)
	assert.Equal(t, "accepted", row["status"])
	assert.Equal(t, "Juan Dela Cruz", row["user_name"])
	assert.NotEmpty(t, row["course_name"])

	// status filter
	w = doJSON(t, r, http.MethodGet, "/api/recommendations?status=accepted", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 1)
	w = doJSON(t, r, http.MethodGet, "/api/recommendations?status=rejected", nil)
	require.Equal(t, http.StatusOK, w.Code)
	pg := decode(t, w)["pagination"].(map[string]interface{})
	assert.Equal(t, float64(0), pg["total"])
	assert.Equal(t, float64(1), pg["pages"])

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/recommendations/%d", rec.RecommendationID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/recommendations/%d", rec.RecommendationID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestManualRecommendationValidatesForeignKeys(t *testing.T) {
	r, _ := newTestRouter(t)
	userID := createUser(t, r, "manual@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/api/recommendations", gin.H{
		"user_id": 9999, "course_id": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["error"])

	w = doJSON(t, r, http.MethodPost, "/api/recommendations", gin.H{
		"user_id": userID, "course_id": 9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course not found", decode(t, w)["error"])
}

func TestFeedbackValidationAndStats(t *testing.T) {
	r, db := newTestRouter(t)
	userID, testID := submitSetup(t, r)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/tests/%d/submit", testID), gin.H{
		"user_id": userID, "score": 18, "total_questions": 20,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var rec model.Recommendation
	require.NoError(t, db.First(&rec, "user_id = ?", userID).Error)

	// ratings outside [1,5] are rejected
	for _, rating := range []int{0, 6} {
		w = doJSON(t, r, http.MethodPost, "/api/feedback/submit", gin.H{
			"recommendation_id": rec.RecommendationID, "rating": rating,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
		assert.Equal(t, "Rating must be between 1 and 5", decode(t, w)["error"])
	}

	// dangling recommendation reference
	w = doJSON(t, r, http.MethodPost, "/api/feedback/submit", gin.H{
		"recommendation_id": 9999, "rating": 4,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/feedback/submit", gin.H{
		"recommendation_id": rec.RecommendationID,
		"user_id":           userID,
		"rating":            4,
		"feedback_text":     "Very helpful recommendation",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.NotZero(t, created["feedback_id"])
	assert.NotEmpty(t, created["created_at"])

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/feedback?user_id=%d", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Juan Dela Cruz", items[0].(map[string]interface{})["user_name"])

	w = doJSON(t, r, http.MethodGet, "/api/feedback/stats/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)
	assert.Equal(t, float64(1), stats["total_feedback"])
	assert.Equal(t, float64(4), stats["average_rating"])
	assert.Equal(t, float64(1), stats["positive_feedback"])
	assert.Equal(t, float64(1), stats["feedback_with_comments"])
}

func TestAnalyticsSystemOverview(t *testing.T) {
	r, _ := newTestRouter(t)
	userID, testID := submitSetup(t, r)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/tests/%d/submit", testID), gin.H{
		"user_id": userID, "score": 10, "total_questions": 20,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/analytics/system/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	overview := body["overview"].(map[string]interface{})
	assert.Equal(t, float64(1), overview["total_users"])
	assert.Equal(t, float64(3), overview["total_courses"])
	assert.Equal(t, float64(1), overview["total_tests"])
	assert.Equal(t, float64(2), overview["total_questions"])
	assert.Equal(t, float64(1), overview["total_recommendations"])

	recent := body["recent_activity"].(map[string]interface{})
	assert.Equal(t, float64(1), recent["new_users_30d"])
	assert.Equal(t, float64(1), recent["new_recommendations_30d"])

	perf := body["recommendation_performance"].(map[string]interface{})
	assert.Equal(t, float64(1), perf["pending"])
}

func TestUserAnalyticsDistributions(t *testing.T) {
	r, _ := newTestRouter(t)
	createUser(t, r, "a@example.com", "secret123")

	w := doJSON(t, r, http.MethodGet, "/api/analytics/users/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	ranges := body["gwa_distribution"].([]interface{})
	require.Len(t, ranges, 5)
	// the seeded user has a 92.5 GWA
	second := ranges[1].(map[string]interface{})
	assert.Equal(t, "90-94", second["gwa_range"])
	assert.Equal(t, float64(1), second["count"])

	trend := body["registration_trend"].([]interface{})
	require.Len(t, trend, 1)
	assert.Equal(t, float64(1), trend[0].(map[string]interface{})["count"])
}

func TestUserDeleteCascades(t *testing.T) {
	r, db := newTestRouter(t)
	userID, testID := submitSetup(t, r)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/tests/%d/submit", testID), gin.H{
		"user_id": userID, "score": 15, "total_questions": 20,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var rec model.Recommendation
	require.NoError(t, db.First(&rec, "user_id = ?", userID).Error)
	w = doJSON(t, r, http.MethodPost, "/api/feedback/submit", gin.H{
		"recommendation_id": rec.RecommendationID, "user_id": userID, "rating": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&model.Recommendation{}).Where("user_id = ?", userID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.UserTestAttempt{}).Where("user_id = ?", userID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.Feedback{}).Where("user_id = ?", userID).Count(&count)
	assert.Zero(t, count)
}
