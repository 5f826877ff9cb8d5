package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func parseUserIDArg(value string) (uint, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid --user %q", value)
	}
	if parsed == 0 {
		return 0, fmt.Errorf("--user must be > 0")
	}
	return uint(parsed), nil
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func formatOptionalScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return strconv.FormatFloat(*score, 'f', 1, 64)
}
