package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwtext/foundation/utils/textx"
)

func newInspectCmd() *cobra.Command {
	var reserve int

	cmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Show storage details of each argument or stdin line",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range lines {
				t := textx.New(line)
				if reserve > 0 {
					if err := t.Reserve(reserve); err != nil {
						fmt.Fprintln(out, invalidStyle.Render("reserve failed: "+err.Error()))
					}
				}
				fmt.Fprintln(out, renderText(t))
				t.Release()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&reserve, "reserve", 0, "reserve capacity before inspecting")
	return cmd
}

// renderText formats the storage details of t as a bordered block.
func renderText(t *textx.Text) string {
	if !t.Valid() {
		return boxStyle.Render(invalidStyle.Render("invalid"))
	}

	mode := "heap"
	if t.IsInline() {
		mode = "inline"
	}
	rows := []string{
		titleStyle.Render(strconv.Quote(t.String())),
		field("mode", mode),
		field("len", strconv.Itoa(t.Len())),
		field("cap", strconv.Itoa(t.Cap())),
		field("xxh64", fmt.Sprintf("%016x", t.Sum64())),
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}
