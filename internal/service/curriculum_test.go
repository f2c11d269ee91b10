package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurriculumCoversEveryGrade(t *testing.T) {
	require.Len(t, Grades, 13)
	for _, grade := range Grades {
		topics, ok := CurriculumTopics[grade]
		require.True(t, ok, "grade %s has no topics", grade)
		assert.NotEmpty(t, topics, "grade %s", grade)
		for _, topic := range topics {
			assert.Contains(t, Subjects, topic.Subject, "grade %s topic %q", grade, topic.Topic)
			assert.NotEmpty(t, topic.Topic)
		}
	}
}

func TestCurriculumHasNoStrayGrades(t *testing.T) {
	for grade := range CurriculumTopics {
		assert.Contains(t, Grades, grade)
	}
}
