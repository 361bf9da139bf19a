package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareCounter(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		operand string
		want    bool
	}{
		{"bare equality", 3, "3", true},
		{"bare inequality", 3, "4", false},
		{"gte", 3, ">=3", true},
		{"gte fails", 2, ">=3", false},
		{"gt", 4, ">3", true},
		{"gt equal fails", 3, ">3", false},
		{"lte", 3, "<=3", true},
		{"lt", 2, "<3", true},
		{"lt equal fails", 3, "<3", false},
		{"negative literal never matches a counter", 0, "-5", false},
		{"malformed text matches nothing", 3, "three", false},
		{"operator with no number matches nothing", 3, ">=", false},
		{"stray operator characters are stripped", 3, ">=3=", true},
		{"whitespace is malformed", 3, ">= 3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareCounter(tt.value, tt.operand))
		})
	}
}
