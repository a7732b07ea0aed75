package output

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	Title  = color.New(color.FgCyan, color.Bold).SprintFunc()
	Muted  = color.New(color.FgHiBlack).SprintFunc()
	Money  = color.New(color.FgGreen).SprintFunc()
	Failed = color.New(color.FgRed).SprintFunc()
)

// IsJSON сообщает, запрошен ли глобальный флаг --json
func IsJSON(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("json")
	return err == nil && v
}

func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
