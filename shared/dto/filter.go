package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq      = "eq"
	FilterOperatorNotEq   = "not_eq"
	FilterOperatorLike    = "like"
	FilterOperatorIn      = "in"
	FilterOperatorLess    = "less"
	FilterOperatorGreater = "greater"
	FilterIsNull          = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// comparisons maps the binary operators onto their SQL form.
var comparisons = map[string]string{
	FilterOperatorEq:      "=",
	FilterOperatorNotEq:   "!=",
	FilterOperatorLess:    "<",
	FilterOperatorGreater: ">",
}

// Filter is one condition on a column. Values are always bound as named
// arguments; ArgName defaults to Field and must be unique within a group.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq not_eq like in less greater is_null"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	column, name := f.column(), f.argName()

	if op, ok := comparisons[f.Operator]; ok {
		return fmt.Sprintf("%s %s :%s", column, op, name), map[string]any{name: f.Value}
	}

	switch f.Operator {
	case FilterOperatorLike:
		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, name), map[string]any{name: fmt.Sprintf("%%%v%%", f.Value)}
	case FilterOperatorIn:
		return f.in(column, name)
	case FilterIsNull:
		return column + " IS NULL", map[string]any{}
	default:
		return "", map[string]any{}
	}
}

// in expands a slice value into one named argument per element. An empty
// slice matches nothing.
func (f *Filter) in(column, name string) (string, map[string]any) {
	args := map[string]any{}

	val := reflect.ValueOf(f.Value)
	if val.Kind() != reflect.Array && val.Kind() != reflect.Slice {
		args[name] = f.Value

		return fmt.Sprintf("%s = :%s", column, name), args
	}

	if val.Len() == 0 {
		return "FALSE", args
	}

	placeholders := make([]string, val.Len())

	for idx := range val.Len() {
		key := fmt.Sprintf("%s_%d", name, idx)
		args[key] = val.Index(idx).Interface()
		placeholders[idx] = ":" + key
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")), args
}

// FilterGroup joins Filters and nested FilterGroups with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return "(" + strings.Join(clauses, " "+f.Operator+" ") + ")", args
}
