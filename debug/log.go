package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Logf writes a debug message to stderr. Trees and other fmt.Stringer
// arguments are rendered on their own indented lines; maps and slices
// are rendered as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case fmt.Stringer:
			s := x.String()
			if strings.Contains(s, "\n") {
				s = "\n   |" + strings.ReplaceAll(strings.TrimSuffix(s, "\n"), "\n", "\n   |")
			}
			args[i] = s
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
