package service

import (
	"testing"

	"coursepro_backend/internal/model"
	"coursepro_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeCandidates() []model.Course {
	return []model.Course{
		{CourseID: 1, CourseName: "BS Computer Science"},
		{CourseID: 2, CourseName: "BS Information Technology"},
		{CourseID: 3, CourseName: "BS Business Administration"},
	}
}

func TestSelectCourseHighScore(t *testing.T) {
	course, reasoning, err := SelectCourse(17, 20, threeCandidates())
	require.NoError(t, err)
	assert.Equal(t, uint(1), course.CourseID)
	assert.Equal(t, "Based on your 85% score, we recommend BS Computer Science", reasoning)
}

func TestSelectCourseBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		score  int
		total  int
		wantID uint
	}{
		{"exactly 80 takes the first", 80, 100, 1},
		{"just under 80 takes the second", 79, 100, 2},
		{"exactly 60 takes the second", 60, 100, 2},
		{"just under 60 takes the third", 59, 100, 3},
		{"zero score takes the third", 0, 100, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			course, _, err := SelectCourse(tc.score, tc.total, threeCandidates())
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, course.CourseID)
		})
	}
}

func TestSelectCourseWrapsShortCandidateList(t *testing.T) {
	two := threeCandidates()[:2]
	course, _, err := SelectCourse(45, 100, two)
	require.NoError(t, err)
	// index 2 wraps to 0 with two candidates
	assert.Equal(t, uint(1), course.CourseID)

	one := threeCandidates()[:1]
	course, _, err = SelectCourse(70, 100, one)
	require.NoError(t, err)
	assert.Equal(t, uint(1), course.CourseID)
}

func TestSelectCourseZeroTotalQuestions(t *testing.T) {
	course, reasoning, err := SelectCourse(5, 0, threeCandidates())
	require.NoError(t, err)
	assert.Equal(t, uint(3), course.CourseID)
	assert.Contains(t, reasoning, "0% score")
}

func TestSelectCourseNoCandidates(t *testing.T) {
	_, _, err := SelectCourse(90, 100, nil)
	assert.ErrorIs(t, err, util.ErrNoCandidateCourse)
}

func TestStatusPerformanceAcceptanceRate(t *testing.T) {
	dist := []model.StatusCount{
		{Status: "accepted", Count: 3},
		{Status: "rejected", Count: 1},
		{Status: "pending", Count: 6},
	}
	perf := statusPerformance(10, dist)
	assert.Equal(t, int64(3), perf.Accepted)
	assert.Equal(t, int64(1), perf.Rejected)
	assert.Equal(t, int64(6), perf.Pending)
	assert.Equal(t, 75.0, perf.AcceptanceRate)
}

func TestStatusPerformanceNoDecisions(t *testing.T) {
	perf := statusPerformance(4, []model.StatusCount{{Status: "pending", Count: 4}})
	assert.Zero(t, perf.AcceptanceRate)
}
