package models

import "time"

// ConditionKind selects which item attribute a search condition inspects.
type ConditionKind string

const (
	KindRating     ConditionKind = "rating"
	KindChannel    ConditionKind = "channel"
	KindKeyword    ConditionKind = "keyword"
	KindComment    ConditionKind = "comment"
	KindTag        ConditionKind = "tag"
	KindHasComment ConditionKind = "hasComment"
	KindHypeUp     ConditionKind = "hypeUp"
	KindHypeDown   ConditionKind = "hypeDown"
)

// IsValid reports whether the kind is one of the known condition kinds.
func (k ConditionKind) IsValid() bool {
	switch k {
	case KindRating, KindChannel, KindKeyword, KindComment, KindTag,
		KindHasComment, KindHypeUp, KindHypeDown:
		return true
	default:
		return false
	}
}

// SearchCondition is one predicate row in a query.
//
// Operand is free text: a substring for the text kinds, "true"/"false"
// for hasComment, "unrated" or a comparison expression (">=3", "<2",
// bare "5") for the numeric kinds. An empty operand makes the condition
// vacuously true so that a half-filled editor row never breaks a query.
type SearchCondition struct {
	Kind    ConditionKind `json:"kind"`
	Operand string        `json:"operand"`
}

// SearchTemplate is a named, reusable pair of condition lists.
type SearchTemplate struct {
	ID        string            `json:"id" gorm:"primaryKey"`
	Name      string            `json:"name"`
	Include   []SearchCondition `json:"include" gorm:"serializer:json"`
	Exclude   []SearchCondition `json:"exclude" gorm:"serializer:json"`
	CreatedAt time.Time         `json:"createdAt"`
}

// TableName sets the storage table for search templates.
func (SearchTemplate) TableName() string { return "search_templates" }
