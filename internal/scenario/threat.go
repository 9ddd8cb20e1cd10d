package scenario

import (
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
)

var (
	urbanMarkers = []string{"城市", "市区", "city", "downtown"}
	ruralMarkers = []string{"郊外", "乡村", "rural", "countryside"}
	nightMarkers = []string{"夜晚", "晚上", "night", "evening"}
)

// AdjustThreat shifts a base danger level by location and time of day and
// clamps the result to [1,5]. Urban locations add one and rural ones subtract
// one. Night adds one, except in the zombie scenario where it subtracts one
// because zombies see poorly in the dark.
func AdjustThreat(base int, s domain.Scenario, location, timeOfDay string) int {
	return domain.Clamp(base+locationShift(location)+nightShift(s, timeOfDay), 1, 5)
}

func locationShift(location string) int {
	loc := strings.ToLower(location)
	switch {
	case loc == "":
		return 0
	case containsAny(loc, urbanMarkers):
		return 1
	case containsAny(loc, ruralMarkers):
		return -1
	}
	return 0
}

func nightShift(s domain.Scenario, timeOfDay string) int {
	if !containsAny(strings.ToLower(timeOfDay), nightMarkers) {
		return 0
	}
	if s == domain.ScenarioZombie {
		return -1
	}
	return 1
}
