// Package catalog holds the fixed sports-day program: event descriptors,
// homeroom classes, rules and rosters. The tables are code-defined and
// read-only; accessors hand out copies so callers can never mutate the
// program, and live scores/statuses are layered on top at render time.
package catalog

import (
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/models"
)

// classes lists the homeroom sections in program order
var classes = []string{
	"1-1", "1-2", "1-3", "1-4",
	"2-1", "2-2", "2-3", "2-4",
	"3-1", "3-2", "3-3", "3-4",
}

// events is the program table. Identifier 8 is reserved for cheering
// scores and intentionally absent.
var events = []models.Event{
	{
		ID:        1,
		Title:     "개회식",
		StartTime: "09:00",
		EndTime:   "09:20",
		Location:  "운동장",
	},
	{
		ID:        2,
		Title:     "이어달리기",
		StartTime: "09:30",
		EndTime:   "10:20",
		Location:  "운동장 트랙",
		Rules: []string{
			"학급별 4인 1조, 배턴 터치 후 다음 주자 출발",
			"트랙 이탈 시 해당 구간 재주행",
			"1위 100점, 2위 70점, 3위 50점, 완주 30점",
		},
		Rosters: relayRosters,
		Scores:  zeroScores(),
	},
	{
		ID:        3,
		Title:     "줄다리기",
		StartTime: "10:30",
		EndTime:   "11:10",
		Location:  "운동장",
		Rules: []string{
			"학년별 토너먼트, 3판 2선승",
			"중앙선 기준 2m 이상 끌려오면 패",
			"승리 시 50점, 결승 승리 시 추가 50점",
		},
		Scores: zeroScores(),
	},
	{
		ID:        4,
		Title:     "피구",
		StartTime: "11:20",
		EndTime:   "12:10",
		Location:  "체육관",
		Rules: []string{
			"학급별 10인 출전, 경기 시간 8분",
			"머리 맞힘은 무효, 외야 부활 없음",
			"승리 시 50점",
		},
		Scores: zeroScores(),
	},
	{
		ID:        5,
		Title:     "미션 달리기",
		StartTime: "13:00",
		EndTime:   "13:50",
		Location:  "운동장",
		Rules: []string{
			"반환점 미션 카드 수행 후 복귀",
			"미션 미수행 시 기록 무효",
		},
		Scores: zeroScores(),
	},
	{
		ID:        6,
		Title:     "단체줄넘기",
		StartTime: "14:00",
		EndTime:   "14:50",
		Location:  "운동장",
		Rules: []string{
			"학급 전원 참여, 2분간 최다 연속 횟수",
			"걸린 횟수와 관계없이 최고 기록 채택",
		},
		Scores: zeroScores(),
	},
	{
		ID:        7,
		Title:     "학급 대항 계주",
		StartTime: "15:00",
		EndTime:   "15:40",
		Location:  "운동장 트랙",
		Rules: []string{
			"학급 대표 4인, 100m씩 총 400m",
			"최종 순위는 결승선 통과 순",
			"1위 150점, 2위 100점, 3위 70점",
		},
		Scores: zeroScores(),
	},
	{
		ID:        9,
		Title:     "폐회식 및 시상",
		StartTime: "15:50",
		EndTime:   "16:20",
		Location:  "운동장",
	},
}

// relayRosters lists the running order for 이어달리기 by class
var relayRosters = map[string][]string{
	"1-1": {"김민준", "이서연", "박지호", "최수아"},
	"1-2": {"정우진", "강하은", "조은우", "윤지민"},
	"1-3": {"임도윤", "한예은", "오시우", "서채원"},
	"1-4": {"신준서", "권나윤", "황민재", "안소율"},
	"2-1": {"송지후", "전하린", "홍승우", "문다은"},
	"2-2": {"양현준", "배서현", "백도현", "유가은"},
	"2-3": {"남시온", "심유나", "노건우", "하서윤"},
	"2-4": {"곽태양", "성지우", "차은호", "주아린"},
	"3-1": {"구민성", "우수빈", "민준혁", "은소명"},
	"3-2": {"표재윤", "설다인", "방준영", "길채은"},
	"3-3": {"피한결", "도예린", "변시현", "석주원"},
	"3-4": {"함태민", "낭미르", "진세아", "옥하람"},
}

// Events returns the program as an independent copy
func Events() []models.Event {
	out := make([]models.Event, len(events))
	for i, e := range events {
		out[i] = copyEvent(e)
	}
	return out
}

// EventByID returns a copy of one event descriptor
func EventByID(id int) (models.Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return copyEvent(e), true
		}
	}
	return models.Event{}, false
}

// Classes returns the homeroom sections in program order
func Classes() []string {
	out := make([]string, len(classes))
	copy(out, classes)
	return out
}

// IsKnownEvent returns true for program event identifiers. The cheering
// identifier is not a program event.
func IsKnownEvent(id int) bool {
	for _, e := range events {
		if e.ID == id {
			return true
		}
	}
	return false
}

func copyEvent(e models.Event) models.Event {
	out := e
	if e.Rules != nil {
		out.Rules = make([]string, len(e.Rules))
		copy(out.Rules, e.Rules)
	}
	if e.Rosters != nil {
		out.Rosters = make(map[string][]string, len(e.Rosters))
		for class, names := range e.Rosters {
			runners := make([]string, len(names))
			copy(runners, names)
			out.Rosters[class] = runners
		}
	}
	if e.Scores != nil {
		out.Scores = models.CopyClassScores(e.Scores)
	}
	return out
}

// zeroScores seeds a score map so score-bearing events render a full
// class table before the first sheet poll lands
func zeroScores() map[string]int {
	scores := make(map[string]int, len(classes))
	for _, class := range classes {
		scores[class] = 0
	}
	return scores
}
