// Package query builds store filters from raw request query parameters.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Operator is a comparison operator attached to a filter field as a sub-key,
// e.g. price[gte]=100.
type Operator string

const (
	OpGte Operator = "gte"
	OpGt  Operator = "gt"
	OpLte Operator = "lte"
	OpLt  Operator = "lt"
)

// mongoOperators maps the query-string operator suffixes to the store's
// native comparison operators.
var mongoOperators = map[Operator]string{
	OpGte: "$gte",
	OpGt:  "$gt",
	OpLte: "$lte",
	OpLt:  "$lt",
}

// reservedKeys are pagination/sort/search controls consumed elsewhere. They
// never reach the store as filter terms.
var reservedKeys = map[string]bool{
	"page":     true,
	"per_page": true,
	"limit":    true,
	"sort":     true,
	"fields":   true,
	"keyword":  true,
}

// Filter is the structured form of a query-string filter: exact-match terms
// plus per-field comparison ranges.
type Filter struct {
	Exact map[string]interface{}
	Range map[string]map[Operator]interface{}
}

// Build converts raw query parameters into a Filter in one parsing pass.
// Keys of the form field[op] with op in {gte,gt,lte,lt} become range terms;
// every other key becomes an exact-match term. Reserved keys are dropped,
// whether bare (page=2) or bracketed (page[gt]=1). A bracketed key with an
// unknown operator passes through verbatim as an exact term; the store will
// simply match nothing for it.
func Build(raw url.Values) Filter {
	f := Filter{
		Exact: make(map[string]interface{}),
		Range: make(map[string]map[Operator]interface{}),
	}

	for key, values := range raw {
		if len(values) == 0 {
			continue
		}
		value := coerce(values[0])

		field, op, ok := splitOperator(key)
		if reservedKeys[field] {
			continue
		}

		if !ok {
			f.Exact[key] = value
			continue
		}

		if f.Range[field] == nil {
			f.Range[field] = make(map[Operator]interface{})
		}
		f.Range[field][op] = value
	}

	return f
}

// BSON renders the filter as the store's query predicate.
func (f Filter) BSON() bson.M {
	predicate := bson.M{}

	for field, value := range f.Exact {
		predicate[field] = value
	}

	for field, ops := range f.Range {
		terms := bson.M{}
		for op, value := range ops {
			terms[mongoOperators[op]] = value
		}
		predicate[field] = terms
	}

	return predicate
}

// IsEmpty reports whether the filter carries no terms.
func (f Filter) IsEmpty() bool {
	return len(f.Exact) == 0 && len(f.Range) == 0
}

// splitOperator parses a key of the form field[op]. The second return is the
// operator; ok is false for bare keys and unknown operators. For bracketed
// keys it still returns the base field so reserved-key stripping applies.
func splitOperator(key string) (field string, op Operator, ok bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, "", false
	}

	field = key[:open]
	candidate := Operator(key[open+1 : len(key)-1])
	if _, known := mongoOperators[candidate]; !known {
		return field, "", false
	}

	return field, candidate, true
}

// coerce turns numeric-looking values into numbers so comparison operators
// compare numerically, matching how the store treats typed fields.
func coerce(value string) interface{} {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	return value
}
