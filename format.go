package mag

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Superscripts appended to a label for derived kinds.
const (
	Squared = "²"
	Cubed   = "³"
)

// Magnitude renders v as the shortest decimal that parses back to v.
// Exponent notation is never used, so 10.0 renders as "10" and 1e-6 as
// "0.000001".
func Magnitude(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Sprint renders a quantity as "<magnitude> <suffix>".
func Sprint(v float64, suffix string) string {
	return Magnitude(v) + " " + suffix
}

// Format implements fmt.Formatter for quantities. Width, precision and
// flags apply to the magnitude only; " <suffix>" is written after it
// unchanged. The verbs v and s use the shortest representation unless a
// precision is given, in which case they behave like f. The float verbs
// e, E, f, F, g and G are passed through. The '+' and ' ' flags add a
// sign to non-negative magnitudes, as they do for floats.
func Format(f fmt.State, verb rune, v float64, suffix string) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), v)
	case 'v', 's':
		if _, ok := f.Precision(); ok {
			fmt.Fprintf(f, fmt.FormatString(f, 'f'), v)
		} else {
			pad(f, signed(f, Magnitude(v)))
		}
	default:
		fmt.Fprintf(f, "%%!%c(%s)", verb, Sprint(v, suffix))
		return
	}
	_, _ = io.WriteString(f, " "+suffix)
}

// signed prefixes s with the sign requested by the '+' or ' ' flag.
func signed(f fmt.State, s string) string {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return s
	}
	switch {
	case f.Flag('+'):
		return "+" + s
	case f.Flag(' '):
		return " " + s
	}
	return s
}

// pad writes s honouring the width and '-' / '0' flags of f.
func pad(f fmt.State, s string) {
	width, ok := f.Width()
	if !ok || len(s) >= width {
		_, _ = io.WriteString(f, s)
		return
	}
	fill := strings.Repeat(" ", width-len(s))
	switch {
	case f.Flag('-'):
		_, _ = io.WriteString(f, s+fill)
	case f.Flag('0') && !strings.HasSuffix(s, "NaN") && !strings.HasSuffix(s, "Inf"):
		sign := ""
		if len(s) > 0 && strings.ContainsRune("-+ ", rune(s[0])) {
			sign, s = s[:1], s[1:]
		}
		_, _ = io.WriteString(f, sign+strings.Repeat("0", len(fill))+s)
	default:
		_, _ = io.WriteString(f, fill+s)
	}
}
