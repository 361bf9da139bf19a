package query

import (
	"strings"

	"media-library/feature/library/models"
)

// Evaluate filters items through two condition lists.
//
// Include conditions combine with AND: an item must satisfy every one.
// Exclude conditions combine with OR: matching any single one removes
// the item. Includes run before excludes, each in list order with
// per-item short circuit. Result order is the input order.
//
// Empty condition lists are legal and leave the input unchanged.
func Evaluate(items []models.LibraryItem, include, exclude []models.SearchCondition) []models.LibraryItem {
	out := make([]models.LibraryItem, 0, len(items))

nextItem:
	for _, item := range items {
		for _, cond := range include {
			if !Matches(item, cond) {
				continue nextItem
			}
		}
		for _, cond := range exclude {
			if Matches(item, cond) {
				continue nextItem
			}
		}
		out = append(out, item)
	}

	return out
}

// Matches reports whether a single condition holds for an item.
//
// An empty operand is vacuously true for every item, whatever the kind.
// Unknown kinds are vacuously true as well, so a stale persisted
// template never breaks a query. Malformed numeric operands match
// nothing (see operand.go).
func Matches(item models.LibraryItem, cond models.SearchCondition) bool {
	if cond.Operand == "" {
		return true
	}

	switch cond.Kind {
	case models.KindRating:
		if cond.Operand == OperandUnrated {
			return !item.Rated()
		}
		return compareCounter(item.Rating, cond.Operand)
	case models.KindChannel:
		return containsFold(item.ChannelTitle, cond.Operand)
	case models.KindKeyword:
		return anyContainsFold(item.Comments, cond.Operand) ||
			anyContainsFold(item.Tags, cond.Operand)
	case models.KindComment:
		return anyContainsFold(item.Comments, cond.Operand)
	case models.KindTag:
		return anyContainsFold(item.Tags, cond.Operand)
	case models.KindHasComment:
		if cond.Operand == "true" {
			return len(item.Comments) > 0
		}
		return len(item.Comments) == 0
	case models.KindHypeUp:
		return compareCounter(item.HypeUp, cond.Operand)
	case models.KindHypeDown:
		return compareCounter(item.HypeDown, cond.Operand)
	default:
		return true
	}
}

// containsFold is a case-insensitive substring check.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// anyContainsFold reports whether any element contains the needle.
func anyContainsFold(values []string, needle string) bool {
	for _, v := range values {
		if containsFold(v, needle) {
			return true
		}
	}
	return false
}
