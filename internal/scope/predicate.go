package scope

import (
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
)

type Combinator string

const (
	CombineOr  Combinator = "or"
	CombineAnd Combinator = "and"
)

func ParseCombinator(s string) (Combinator, error) {
	switch c := Combinator(strings.ToLower(strings.TrimSpace(s))); c {
	case CombineOr, CombineAnd:
		return c, nil
	case "":
		return CombineOr, nil
	default:
		return "", fmt.Errorf("unknown combinator %q", s)
	}
}

// Term restricts Column to the given set of ids. An empty set matches
// nothing.
type Term struct {
	Column string
	IDs    []uuid.UUID
}

// Owned is implemented by rows whose ownership columns can be read in
// memory.
type Owned interface {
	OwnerID(column string) (uuid.UUID, bool)
}

// Predicate is a resolved scope. The zero value matches nothing.
type Predicate struct {
	unrestricted bool
	terms        []Term
	combine      Combinator
}

func All() Predicate {
	return Predicate{unrestricted: true}
}

func None() Predicate {
	return Predicate{}
}

func Where(combine Combinator, terms ...Term) Predicate {
	return Predicate{terms: terms, combine: combine}
}

func (p Predicate) Unrestricted() bool {
	return p.unrestricted
}

// Empty reports whether the predicate can match no row at all.
func (p Predicate) Empty() bool {
	if p.unrestricted {
		return false
	}

	if p.combine == CombineAnd {
		return len(p.terms) == 0 || slices.ContainsFunc(p.terms, func(t Term) bool { return len(t.IDs) == 0 })
	}

	return !slices.ContainsFunc(p.terms, func(t Term) bool { return len(t.IDs) > 0 })
}

func (p Predicate) Terms() []Term {
	return slices.Clone(p.terms)
}

// ToSql renders the predicate with unqualified column names.
func (p Predicate) ToSql() (string, []any, error) { //nolint:revive,stylecheck
	return p.On("").ToSql()
}

// On renders the predicate with columns qualified by the given table alias.
func (p Predicate) On(alias string) sq.Sqlizer {
	if p.unrestricted {
		return sq.Expr("1=1")
	}

	if len(p.terms) == 0 {
		return sq.Expr("1=0")
	}

	parts := make([]sq.Sqlizer, 0, len(p.terms))

	for _, t := range p.terms {
		col := t.Column
		if alias != "" {
			col = alias + "." + col
		}

		parts = append(parts, sq.Eq{col: t.IDs})
	}

	if p.combine == CombineAnd {
		return sq.And(parts)
	}

	return sq.Or(parts)
}

// Matches evaluates the predicate against a row already in memory.
func (p Predicate) Matches(row Owned) bool {
	if p.unrestricted {
		return true
	}

	if len(p.terms) == 0 {
		return false
	}

	for _, t := range p.terms {
		owner, ok := row.OwnerID(t.Column)
		hit := ok && slices.Contains(t.IDs, owner)

		if p.combine == CombineAnd && !hit {
			return false
		}

		if p.combine != CombineAnd && hit {
			return true
		}
	}

	return p.combine == CombineAnd
}
