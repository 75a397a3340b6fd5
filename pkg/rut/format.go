package rut

import "strings"

// Format renders input for display, grouping the body in triplets from the
// right and separating the verifier with a hyphen. It accepts partial input
// so it can be applied while the user types:
//
//	Format("123456789")    // "12.345.678-9"
//	Format("12.3")         // "12-3"
//	Format("1")            // "1"
//	Format("")             // ""
//
// Formatting is idempotent: Format(Format(s)) == Format(s).
func Format(input string) string {
	canonical := Canonicalize(input)
	if len(canonical) <= 1 {
		// A single character is shown bare so typing doesn't start with "-".
		return canonical
	}

	body := canonical[:len(canonical)-1]
	verifier := canonical[len(canonical)-1]

	var b strings.Builder
	b.Grow(len(canonical) + len(body)/3 + 1)

	lead := len(body) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(body[:lead])
	for i := lead; i < len(body); i += 3 {
		b.WriteByte('.')
		b.WriteString(body[i : i+3])
	}
	b.WriteByte('-')
	b.WriteByte(verifier)

	return b.String()
}
