package runtime

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

const subscriptDigits = "₀₁₂₃₄₅₆₇₈₉"

// Fresh returns hint if no binding in the context uses it, otherwise hint
// with the smallest numeric subscript that is unused. It depends only on
// the context's name set.
func (c *Context) Fresh(hint string) string {
	return Freshen(hint, c.Has)
}

// FreshBinder is Fresh that additionally avoids the given names, typically
// the names mentioned in the binder's scope.
func (c *Context) FreshBinder(hint string, avoid []string) string {
	return Freshen(hint, func(name string) bool {
		return c.Has(name) || slices.Contains(avoid, name)
	})
}

// Freshen picks a variant of hint for which used reports false.
func Freshen(hint string, used func(string) bool) string {
	if hint == "" {
		hint = "x"
	}
	if !used(hint) {
		return hint
	}
	base, n := splitSubscript(hint)
	for {
		n++
		candidate := base + toSubscript(n)
		if !used(candidate) {
			return candidate
		}
	}
}

func splitSubscript(name string) (string, int) {
	end := len(name)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(name[:end])
		if !strings.ContainsRune(subscriptDigits, r) {
			break
		}
		end -= size
	}
	if end == len(name) || end == 0 {
		return name, 0
	}
	n := 0
	for _, r := range name[end:] {
		n = n*10 + subscriptValue(r)
	}
	return name[:end], n
}

func subscriptValue(r rune) int {
	i := 0
	for _, d := range subscriptDigits {
		if d == r {
			return i
		}
		i++
	}
	return 0
}

func toSubscript(n int) string {
	digits := []rune(subscriptDigits)
	if n == 0 {
		return string(digits[0])
	}
	var out []rune
	for n > 0 {
		out = append([]rune{digits[n%10]}, out...)
		n /= 10
	}
	return string(out)
}
