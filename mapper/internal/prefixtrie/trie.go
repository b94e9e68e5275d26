/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package prefixtrie

import (
	"errors"
	"unicode/utf8"
)

// Wildcard matches exactly one character of a sub-code.
const Wildcard = '?'

// Trie is a character-level prefix index for sub-codes.
// Each node represents one rune; Wildcard matches any single rune.
// The trie supports longest-prefix-match (LPM), so a more specific rule wins
// over a shorter one, and at equal depth a literal rune beats the wildcard.
type Trie[T any] struct {
	// children contains next runes, including Wildcard.
	children map[rune]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the prefix as inserted, set only when hasVal=true.
	// MatchWithPattern returns it so Explain does not rebuild strings.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// not valid UTF-8, or consists only of wildcards.
	ErrInvalidPrefix = errors.New("prefixtrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[rune]*Trie[T])}
}

// Insert associates val with prefix. Inserting the same prefix twice keeps
// the last value.
//
// Examples:
//
//	"DB"       matches "DB", "DBTimeout", "DB-pool"
//	"-A?"      matches "-AB", "-AC1" but not "-A"
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" || !utf8.ValidString(prefix) {
		return ErrInvalidPrefix
	}

	allWild := true
	for _, r := range prefix {
		if r != Wildcard {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, r := range prefix {
		child, exists := cur.children[r]
		if !exists {
			child = New[T]()
			cur.children[r] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match finds the value of the longest prefix of sub that was inserted.
func (t *Trie[T]) Match(sub string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(sub)
	return v, ok
}

// MatchWithPattern is like Match but also returns the matched pattern as it
// was inserted (possibly containing Wildcard).
func (t *Trie[T]) MatchWithPattern(sub string) (T, bool, string) {
	var zero T
	if t == nil || !utf8.ValidString(sub) {
		return zero, false, ""
	}
	rs := []rune(sub)

	var (
		best      *Trie[T]
		bestDepth = -1
	)
	// dfs visits n after consuming depth runes. Literal children are
	// explored before the wildcard, and only strictly deeper matches replace
	// the current best, so literals win ties.
	var dfs func(n *Trie[T], depth int)
	dfs = func(n *Trie[T], depth int) {
		if n.hasVal && depth > bestDepth {
			best, bestDepth = n, depth
		}
		if depth == len(rs) {
			return
		}
		if c, ok := n.children[rs[depth]]; ok {
			dfs(c, depth+1)
		}
		if rs[depth] != Wildcard {
			if c, ok := n.children[Wildcard]; ok {
				dfs(c, depth+1)
			}
		}
	}
	dfs(t, 0)

	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// Len returns the number of prefixes stored in the trie.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	if t.hasVal {
		n++
	}
	for _, c := range t.children {
		n += c.Len()
	}
	return n
}
