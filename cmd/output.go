package cmd

import (
	"encoding/json"
	"io"
	"os"
)

var stdout io.Writer = os.Stdout

func writeJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
