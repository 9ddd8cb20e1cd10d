package skills

import "fmt"

var difficultyLevels = map[int]string{
	1: "初级 - 适合新手，基础技能",
	2: "中级 - 需要一定经验",
	3: "高级 - 需要丰富经验和技巧",
	4: "专家 - 需要专业知识和大量练习",
	5: "大师 - 极其困难，需要长期训练",
}

// DifficultyDescription labels a 1-5 difficulty.
func DifficultyDescription(level int) string {
	if d, ok := difficultyLevels[level]; ok {
		return d
	}
	return "未知难度"
}

// FormatMinutes renders a duration the way the guide displays it:
// minutes under an hour, hours and minutes under a day, days and hours above.
func FormatMinutes(minutes int) string {
	switch {
	case minutes <= 0:
		return "时间不定"
	case minutes < 60:
		return fmt.Sprintf("%d分钟", minutes)
	case minutes < 24*60:
		h, m := minutes/60, minutes%60
		if m == 0 {
			return fmt.Sprintf("%d小时", h)
		}
		return fmt.Sprintf("%d小时%d分钟", h, m)
	}
	d, h := minutes/(24*60), (minutes%(24*60))/60
	if h == 0 {
		return fmt.Sprintf("%d天", d)
	}
	return fmt.Sprintf("%d天%d小时", d, h)
}

// StepTime splits total evenly across steps. The first two steps are
// preparation and get half as much again.
func StepTime(totalMinutes, steps, step int) string {
	if totalMinutes <= 0 || steps <= 0 {
		return "时间不定"
	}
	t := totalMinutes / steps
	if step <= 2 {
		t = t * 3 / 2
	}
	return FormatMinutes(t)
}
