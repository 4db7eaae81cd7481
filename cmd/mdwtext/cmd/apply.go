package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/mdwtext/foundation/core/errors"
	"github.com/msto63/mdwtext/foundation/utils/textx"
)

// step is one edit applied to every input line.
type step func(*textx.Text) error

type applyFlags struct {
	trim     bool
	upper    bool
	lower    bool
	replace  []string
	prefix   string
	suffix   string
	truncate int
}

func newApplyCmd() *cobra.Command {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply [text...]",
		Short: "Apply edits to each argument or stdin line",
		Long: `Apply edits to each argument, or to every line on stdin when no
arguments are given. Edits run in a fixed order: trim, replace (in flag
order), case, prefix/suffix, truncate.

Example:
  printf '  a-b-c  \n' | mdwtext apply --trim --replace=-=+ --upper`,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := f.steps()
			if err != nil {
				return err
			}
			lines, err := inputLines(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range lines {
				t := textx.New(line)
				for _, s := range steps {
					if err := s(t); err != nil {
						return fmt.Errorf("edit %q: %w", line, err)
					}
				}
				fmt.Fprintln(out, t.String())
				t.Release()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&f.trim, "trim", false, "strip leading and trailing whitespace")
	cmd.Flags().BoolVar(&f.upper, "upper", false, "convert ASCII letters to upper case")
	cmd.Flags().BoolVar(&f.lower, "lower", false, "convert ASCII letters to lower case")
	cmd.Flags().StringArrayVar(&f.replace, "replace", nil, "replace FIND=REPL (repeatable)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "insert text at the front")
	cmd.Flags().StringVar(&f.suffix, "suffix", "", "append text at the end")
	cmd.Flags().IntVar(&f.truncate, "truncate", -1, "keep at most N bytes")
	cmd.MarkFlagsMutuallyExclusive("upper", "lower")

	return cmd
}

// steps turns the flags into the edit pipeline.
func (f *applyFlags) steps() ([]step, error) {
	var steps []step

	if f.trim {
		steps = append(steps, func(t *textx.Text) error { t.Trim(); return nil })
	}
	for _, r := range f.replace {
		find, repl, ok := strings.Cut(r, "=")
		if !ok || find == "" {
			return nil, mdwerrors.InputError(mdwerrors.ModuleCLI, "apply", r, "--replace FIND=REPL")
		}
		steps = append(steps, func(t *textx.Text) error { return t.Replace(find, repl) })
	}
	switch {
	case f.upper:
		steps = append(steps, func(t *textx.Text) error { t.ToUpper(); return nil })
	case f.lower:
		steps = append(steps, func(t *textx.Text) error { t.ToLower(); return nil })
	}
	if f.prefix != "" {
		steps = append(steps, func(t *textx.Text) error { return t.Insert(0, f.prefix) })
	}
	if f.suffix != "" {
		steps = append(steps, func(t *textx.Text) error { return t.ConcatString(f.suffix) })
	}
	if f.truncate >= 0 {
		steps = append(steps, func(t *textx.Text) error { t.Truncate(f.truncate); return nil })
	}
	return steps, nil
}
