// Package boolexpr provides boolean operator trees over opaque leaf values
// and a Quine–McCluskey style simplifier. Trees are built through
// constructors that keep them normalized: same-operator children are
// flattened, duplicates dropped and constants folded.
package boolexpr

import (
	"math/bits"
	"slices"
)

// DefaultMaxVariables is the leaf-count cutoff beyond which Simplify returns
// its input unchanged. Truth-table enumeration is exponential in the number
// of distinct leaves.
const DefaultMaxVariables = 16

type Kind int

const (
	FalseKind Kind = iota
	TrueKind
	LeafKind
	NotKind
	AndKind
	OrKind
	XorKind
)

// Tree is a boolean expression over leaves of type T. The zero value is the
// constant false.
type Tree[T comparable] struct {
	kind     Kind
	leaf     T
	children []Tree[T]
}

func False[T comparable]() Tree[T] { return Tree[T]{kind: FalseKind} }
func True[T comparable]() Tree[T]  { return Tree[T]{kind: TrueKind} }

func Leaf[T comparable](v T) Tree[T] { return Tree[T]{kind: LeafKind, leaf: v} }

func (t Tree[T]) Kind() Kind { return t.kind }

// LeafValue returns the leaf's value. It panics unless t is a leaf.
func (t Tree[T]) LeafValue() T {
	if t.kind != LeafKind {
		panic("boolexpr: not a leaf")
	}
	return t.leaf
}

// Children returns the operands of an operator node. The returned slice must
// not be modified.
func (t Tree[T]) Children() []Tree[T] { return t.children }

// Not returns the negation of t. Double negations and constants collapse.
func Not[T comparable](t Tree[T]) Tree[T] {
	switch t.kind {
	case FalseKind:
		return True[T]()
	case TrueKind:
		return False[T]()
	case NotKind:
		return t.children[0]
	default:
		return Tree[T]{kind: NotKind, children: []Tree[T]{t}}
	}
}

// And returns the conjunction of the operands. Nested conjunctions are
// flattened, duplicates dropped, true operands removed, and a false operand
// or a complementary pair collapses the whole term to false. With no
// operands And returns true.
func And[T comparable](ts ...Tree[T]) Tree[T] {
	children, ok := gatherNary(AndKind, ts)
	if !ok {
		return False[T]()
	}
	switch len(children) {
	case 0:
		return True[T]()
	case 1:
		return children[0]
	}
	return Tree[T]{kind: AndKind, children: children}
}

// Or returns the disjunction of the operands, normalized dually to [And].
// With no operands Or returns false.
func Or[T comparable](ts ...Tree[T]) Tree[T] {
	children, ok := gatherNary(OrKind, ts)
	if !ok {
		return True[T]()
	}
	switch len(children) {
	case 0:
		return False[T]()
	case 1:
		return children[0]
	}
	return Tree[T]{kind: OrKind, children: children}
}

// Xor returns the exclusive or of the operands. Nested xors are flattened,
// identical operands cancel in pairs and constants fold into the parity.
// With no operands Xor returns false.
func Xor[T comparable](ts ...Tree[T]) Tree[T] {
	var children []Tree[T]
	odd := false
	var flatten func(ts []Tree[T])
	flatten = func(ts []Tree[T]) {
		for _, t := range ts {
			switch t.kind {
			case FalseKind:
			case TrueKind:
				odd = !odd
			case XorKind:
				flatten(t.children)
			default:
				children = append(children, t)
			}
		}
	}
	flatten(ts)
	// Cancel identical operands pairwise.
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			if children[i].Equal(children[j]) {
				children = slices.Delete(children, j, j+1)
				children = slices.Delete(children, i, i+1)
				i--
				break
			}
		}
	}
	var out Tree[T]
	switch len(children) {
	case 0:
		out = False[T]()
	case 1:
		out = children[0]
	default:
		out = Tree[T]{kind: XorKind, children: children}
	}
	if odd {
		out = Not(out)
	}
	return out
}

// gatherNary flattens and dedupes the operands of an and/or node. The
// identity element of the operator is dropped and ok is false when the
// absorbing element or a complementary pair occurs.
func gatherNary[T comparable](kind Kind, ts []Tree[T]) (children []Tree[T], ok bool) {
	identity, absorbing := TrueKind, FalseKind
	if kind == OrKind {
		identity, absorbing = FalseKind, TrueKind
	}
	var flatten func(ts []Tree[T]) bool
	flatten = func(ts []Tree[T]) bool {
		for _, t := range ts {
			switch t.kind {
			case identity:
			case absorbing:
				return false
			case kind:
				if !flatten(t.children) {
					return false
				}
			default:
				children = append(children, t)
			}
		}
		return true
	}
	if !flatten(ts) {
		return nil, false
	}
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			if children[i].Equal(children[j]) {
				children = slices.Delete(children, j, j+1)
				j--
			} else if children[i].Equal(Not(children[j])) {
				return nil, false
			}
		}
	}
	return children, true
}

// Equal reports structural equality. Operand order is significant.
func (t Tree[T]) Equal(o Tree[T]) bool {
	if t.kind != o.kind || len(t.children) != len(o.children) {
		return false
	}
	if t.kind == LeafKind {
		return t.leaf == o.leaf
	}
	for i := range t.children {
		if !t.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// Eval evaluates the tree under the given leaf assignment.
func (t Tree[T]) Eval(assign func(T) bool) bool {
	switch t.kind {
	case FalseKind:
		return false
	case TrueKind:
		return true
	case LeafKind:
		return assign(t.leaf)
	case NotKind:
		return !t.children[0].Eval(assign)
	case AndKind:
		for _, c := range t.children {
			if !c.Eval(assign) {
				return false
			}
		}
		return true
	case OrKind:
		for _, c := range t.children {
			if c.Eval(assign) {
				return true
			}
		}
		return false
	case XorKind:
		out := false
		for _, c := range t.children {
			out = out != c.Eval(assign)
		}
		return out
	default:
		panic("boolexpr: invalid node kind")
	}
}

// Variables returns the distinct leaf values of the tree, in first-appearance
// order.
func (t Tree[T]) Variables() []T {
	var vars []T
	var walk func(t Tree[T])
	walk = func(t Tree[T]) {
		if t.kind == LeafKind {
			if !slices.Contains(vars, t.leaf) {
				vars = append(vars, t.leaf)
			}
			return
		}
		for _, c := range t.children {
			walk(c)
		}
	}
	walk(t)
	return vars
}

// implicant is a partially specified assignment: mask selects the variables
// the term constrains and bits holds their required values.
type implicant struct {
	bits uint
	mask uint
}

// Simplify rewrites the tree as a disjunction of prime implicants of its
// truth table. The result evaluates identically under every assignment but
// is not guaranteed to be a minimal cover. Trees with more than maxVariables
// distinct leaves are returned unchanged.
func (t Tree[T]) Simplify(maxVariables int) Tree[T] {
	vars := t.Variables()
	n := len(vars)
	if n == 0 || n > maxVariables {
		// Without leaves the constructors already folded the tree to a
		// constant, and beyond the cutoff enumeration is too expensive.
		return t
	}

	index := make(map[T]int, n)
	for i, v := range vars {
		index[v] = i
	}
	full := uint(1)<<n - 1

	var minterms []implicant
	for row := uint(0); row <= full; row++ {
		if t.Eval(func(v T) bool { return row&(1<<index[v]) != 0 }) {
			minterms = append(minterms, implicant{bits: row, mask: full})
		}
	}
	switch len(minterms) {
	case 0:
		return False[T]()
	case int(full) + 1:
		return True[T]()
	}

	primes := primeImplicants(minterms)
	slices.SortFunc(primes, func(a, b implicant) int {
		// Most general terms first.
		return bits.OnesCount(a.mask) - bits.OnesCount(b.mask)
	})

	terms := make([]Tree[T], len(primes))
	for i, p := range primes {
		var factors []Tree[T]
		for v := 0; v < n; v++ {
			bit := uint(1) << v
			if p.mask&bit == 0 {
				continue
			}
			if p.bits&bit != 0 {
				factors = append(factors, Leaf(vars[v]))
			} else {
				factors = append(factors, Not(Leaf(vars[v])))
			}
		}
		terms[i] = And(factors...)
	}
	return Or(terms...)
}

// primeImplicants repeatedly merges implicants that differ in exactly one
// constrained bit until no merge applies, returning the unmerged survivors.
func primeImplicants(current []implicant) []implicant {
	var primes []implicant
	for len(current) > 0 {
		merged := make([]bool, len(current))
		var next []implicant
		for i := 0; i < len(current); i++ {
			for j := i + 1; j < len(current); j++ {
				a, b := current[i], current[j]
				if a.mask != b.mask {
					continue
				}
				diff := a.bits ^ b.bits
				if bits.OnesCount(diff) != 1 {
					continue
				}
				merged[i], merged[j] = true, true
				m := implicant{bits: a.bits &^ diff, mask: a.mask &^ diff}
				if !slices.Contains(next, m) {
					next = append(next, m)
				}
			}
		}
		for i, imp := range current {
			if !merged[i] && !slices.Contains(primes, imp) {
				primes = append(primes, imp)
			}
		}
		current = next
	}
	return primes
}
