package query

import (
	"strconv"
	"strings"
)

// OperandUnrated is the sentinel operand matching items with no rating.
const OperandUnrated = "unrated"

// compareCounter evaluates a free-text comparison operand against a
// counter value. Supported forms: ">=N", ">N", "<=N", "<N" and bare "N"
// for equality. Two-character operators are checked before
// single-character ones so ">=3" never parses as ">" with operand "=3".
//
// The operand is free text typed by the user, so parsing must never
// fail loudly: an operand whose digits do not form an integer matches
// nothing at all.
func compareCounter(value int, operand string) bool {
	digits := strings.Map(func(r rune) rune {
		if r == '>' || r == '<' || r == '=' {
			return -1
		}
		return r
	}, operand)

	n, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}

	switch {
	case strings.HasPrefix(operand, ">="):
		return value >= n
	case strings.HasPrefix(operand, "<="):
		return value <= n
	case strings.HasPrefix(operand, ">"):
		return value > n
	case strings.HasPrefix(operand, "<"):
		return value < n
	default:
		return value == n
	}
}
