package leads

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Condition is one store-consumable predicate clause. The full filter is a
// conjunction of conditions; there is no disjunction or negation.
type Condition struct {
	Query string
	Args  []any
}

const operatorSuffix = "_operator"

type fieldKind int

const (
	kindText fieldKind = iota
	kindNumeric
	kindEnum
	kindDate
	kindBool
	kindExact
)

// filterableColumns is the whitelist of lead columns a filter key may target.
// Query-string keys can never reach SQL as column names without it.
var filterableColumns = map[string]fieldKind{
	"email":            kindText,
	"company":          kindText,
	"city":             kindText,
	"score":            kindNumeric,
	"lead_value":       kindNumeric,
	"status":           kindEnum,
	"source":           kindEnum,
	"created_at":       kindDate,
	"last_activity_at": kindDate,
	"is_qualified":     kindBool,
	"first_name":       kindExact,
	"last_name":        kindExact,
	"phone":            kindExact,
	"state":            kindExact,
}

// reservedParams never become filter conditions.
var reservedParams = map[string]struct{}{
	"page":  {},
	"limit": {},
}

// BuildFilter translates flat query parameters into a conjunction of
// conditions. It is pure and owner-agnostic: the caller injects owner scoping.
// Malformed values degrade to omission of that condition, never to an error.
func BuildFilter(values url.Values) []Condition {
	keys := make([]string, 0, len(values))
	for key := range values {
		if _, reserved := reservedParams[key]; reserved {
			continue
		}
		if strings.HasSuffix(key, operatorSuffix) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	conditions := make([]Condition, 0, len(keys))
	for _, key := range keys {
		value := strings.TrimSpace(values.Get(key))
		if value == "" {
			continue
		}
		kind, ok := filterableColumns[key]
		if !ok {
			continue
		}
		operator := strings.TrimSpace(values.Get(key + operatorSuffix))

		if cond, ok := buildCondition(key, kind, operator, value); ok {
			conditions = append(conditions, cond)
		}
	}
	return conditions
}

func buildCondition(column string, kind fieldKind, operator, value string) (Condition, bool) {
	switch kind {
	case kindText:
		return textCondition(column, operator, value), true
	case kindNumeric:
		return numericCondition(column, operator, value)
	case kindEnum:
		return enumCondition(column, operator, value), true
	case kindDate:
		return dateCondition(column, operator, value)
	case kindBool:
		return Condition{Query: column + " = ?", Args: []any{value == "true"}}, true
	default:
		return exactCondition(column, value), true
	}
}

func exactCondition(column, value string) Condition {
	return Condition{Query: column + " = ?", Args: []any{value}}
}

func textCondition(column, operator, value string) Condition {
	if operator == "contains" {
		pattern := "%" + strings.ToLower(value) + "%"
		return Condition{Query: fmt.Sprintf("LOWER(%s) LIKE ?", column), Args: []any{pattern}}
	}
	return exactCondition(column, value)
}

func numericCondition(column, operator, value string) (Condition, bool) {
	switch operator {
	case "between":
		low, high, ok := parseNumericRange(value)
		if !ok {
			return Condition{}, false
		}
		return Condition{Query: column + " BETWEEN ? AND ?", Args: []any{low, high}}, true
	case "gt":
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Condition{}, false
		}
		return Condition{Query: column + " > ?", Args: []any{number}}, true
	case "lt":
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Condition{}, false
		}
		return Condition{Query: column + " < ?", Args: []any{number}}, true
	default:
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Condition{}, false
		}
		return Condition{Query: column + " = ?", Args: []any{number}}, true
	}
}

func parseNumericRange(value string) (float64, float64, bool) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return low, high, true
}

func enumCondition(column, operator, value string) Condition {
	if operator == "in" {
		members := []string{}
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				members = append(members, trimmed)
			}
		}
		if len(members) > 0 {
			return Condition{Query: column + " IN ?", Args: []any{members}}
		}
	}
	return exactCondition(column, value)
}

func dateCondition(column, operator, value string) (Condition, bool) {
	switch operator {
	case "on":
		day, ok := parseDate(value)
		if !ok {
			return Condition{}, false
		}
		start := day.Truncate(24 * time.Hour)
		return Condition{
			Query: fmt.Sprintf("%s >= ? AND %s < ?", column, column),
			Args:  []any{start, start.AddDate(0, 0, 1)},
		}, true
	case "before":
		at, ok := parseDate(value)
		if !ok {
			return Condition{}, false
		}
		return Condition{Query: column + " < ?", Args: []any{at}}, true
	case "after":
		at, ok := parseDate(value)
		if !ok {
			return Condition{}, false
		}
		return Condition{Query: column + " > ?", Args: []any{at}}, true
	case "between":
		parts := strings.SplitN(value, ",", 2)
		if len(parts) != 2 {
			return Condition{}, false
		}
		low, okLow := parseDate(strings.TrimSpace(parts[0]))
		high, okHigh := parseDate(strings.TrimSpace(parts[1]))
		if !okLow || !okHigh {
			return Condition{}, false
		}
		return Condition{
			Query: fmt.Sprintf("%s >= ? AND %s <= ?", column, column),
			Args:  []any{low, high},
		}, true
	default:
		at, ok := parseDate(value)
		if !ok {
			return Condition{}, false
		}
		return Condition{Query: column + " = ?", Args: []any{at}}, true
	}
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if at, err := time.Parse(layout, value); err == nil {
			return at.UTC(), true
		}
	}
	return time.Time{}, false
}
