package service

import (
	"fmt"
	"lms_backend/internal/model"
	"strings"
)

const (
	PointsPerCorrect = 20
	DefaultBadge     = "Newbie"
)

type badgeTier struct {
	MinPoints int
	Label     string
}

// 按分数从高到低排列，取第一个满足的档位
var badgeTiers = []badgeTier{
	{100, "Expert"},
	{80, "Specialist"},
	{60, "Achiever"},
	{40, "Explorer"},
	{20, "Newbie"},
}

func BadgeFor(points int) string {
	for _, tier := range badgeTiers {
		if points >= tier.MinPoints {
			return tier.Label
		}
	}
	return DefaultBadge
}

// NormalizeAnswer 去除首尾空白并转大写，非字符串按其文本形式处理
func NormalizeAnswer(v interface{}) string {
	switch a := v.(type) {
	case nil:
		return ""
	case string:
		return strings.ToUpper(strings.TrimSpace(a))
	default:
		return strings.ToUpper(strings.TrimSpace(fmt.Sprint(a)))
	}
}

func isOptionLetter(s string) bool {
	for _, l := range model.OptionLetters {
		if s == l {
			return true
		}
	}
	return false
}

// CountCorrect answers 以题目 ID 为键，值为已规范化的答案
func CountCorrect(questions []model.TestQuestion, answers map[uint]string) int {
	correct := 0
	for _, q := range questions {
		ans := answers[q.ID]
		if isOptionLetter(ans) && ans == q.CorrectOption {
			correct++
		}
	}
	return correct
}

func Score(correct int) model.TestResult {
	points := correct * PointsPerCorrect
	return model.TestResult{
		CorrectCount: correct,
		Points:       points,
		Badge:        BadgeFor(points),
	}
}
