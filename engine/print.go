package engine

import "strings"

// Print renders t with binder names restored. names is the session
// context's name list, most recently declared first, aligned with the
// term's free indices. Binder hints that would capture a visible name
// are freshened with primes.
func Print(t Term, names []string) string {
	var b strings.Builder
	printTerm(&b, t, names, 0)
	return b.String()
}

// precedence levels: 0 = lambda body, 1 = application, 2 = atom
func printTerm(b *strings.Builder, t Term, names []string, prec int) {
	switch t := t.(type) {
	case Var:
		if int(t) < len(names) {
			b.WriteString(names[t])
		} else {
			// engine-internal index out of range; make it visible
			b.WriteString("?")
		}

	case Abs:
		if prec > 0 {
			b.WriteString("(")
		}
		b.WriteString("^")
		// fold consecutive binders into one head: ^x y . e
		body := Term(t)
		for {
			abs, ok := body.(Abs)
			if !ok {
				break
			}
			var fresh string
			names, fresh = pickFreshName(names, abs.Hint)
			b.WriteString(" ")
			b.WriteString(fresh)
			body = abs.Body
		}
		b.WriteString(" . ")
		printTerm(b, body, names, 0)
		if prec > 0 {
			b.WriteString(")")
		}

	case App:
		if prec > 1 {
			b.WriteString("(")
		}
		printTerm(b, t.Fn, names, 1)
		b.WriteString(" ")
		printTerm(b, t.Arg, names, 2)
		if prec > 1 {
			b.WriteString(")")
		}
	}
}

// pickFreshName primes hint until it no longer clashes with a visible
// name, then pushes it onto the front of the name list.
func pickFreshName(names []string, hint string) ([]string, string) {
	if hint == "" {
		hint = "x"
	}
	for contains(names, hint) {
		hint += "'"
	}
	fresh := make([]string, 0, len(names)+1)
	fresh = append(fresh, hint)
	fresh = append(fresh, names...)
	return fresh, hint
}

func contains(names []string, s string) bool {
	for _, n := range names {
		if n == s {
			return true
		}
	}
	return false
}
