package commands

import (
	"encoding/json"
	"fmt"
	"io"
)

// printResult writes v as indented JSON when --json is set and the plain text
// form otherwise.
func printResult(w io.Writer, v interface{}, text string) error {
	if !jsonOutput {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
