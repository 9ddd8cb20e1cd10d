package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "时间不定"},
		{-5, "时间不定"},
		{45, "45分钟"},
		{60, "1小时"},
		{90, "1小时30分钟"},
		{1440, "1天"},
		{1500, "1天1小时"},
		{3000, "2天2小时"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestStepTime_PreparationStepsTakeLonger(t *testing.T) {
	assert.Equal(t, "9分钟", StepTime(30, 5, 1))
	assert.Equal(t, "9分钟", StepTime(30, 5, 2))
	assert.Equal(t, "6分钟", StepTime(30, 5, 3))
	assert.Equal(t, "时间不定", StepTime(0, 5, 1))
	assert.Equal(t, "时间不定", StepTime(30, 0, 1))
}

func TestDifficultyDescription(t *testing.T) {
	assert.Equal(t, "初级 - 适合新手，基础技能", DifficultyDescription(1))
	assert.Equal(t, "未知难度", DifficultyDescription(9))
}
