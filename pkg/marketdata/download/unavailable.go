package download

import (
	"fmt"
	"strings"
)

// UnavailablePairs is an ordered set of pairs the source could not serve.
// The zero value is empty and ready to use.
type UnavailablePairs struct {
	pairs []string
	seen  map[string]struct{}
}

// NewUnavailablePairs returns a set holding pairs, duplicates removed.
func NewUnavailablePairs(pairs ...string) UnavailablePairs {
	var u UnavailablePairs
	for _, p := range pairs {
		u.Add(p)
	}

	return u
}

// Add appends pair unless it is already present.
func (u *UnavailablePairs) Add(pair string) {
	if u.seen == nil {
		u.seen = make(map[string]struct{})
	}

	if _, ok := u.seen[pair]; ok {
		return
	}

	u.seen[pair] = struct{}{}
	u.pairs = append(u.pairs, pair)
}

// List returns a copy of the pairs in the order they were first added.
func (u UnavailablePairs) List() []string {
	return append([]string(nil), u.pairs...)
}

func (u UnavailablePairs) Len() int {
	return len(u.pairs)
}

// String renders the set as "[A,B]".
func (u UnavailablePairs) String() string {
	return fmt.Sprintf("[%s]", strings.Join(u.pairs, ","))
}
