package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwtext/foundation/core/config"
	"github.com/msto63/mdwtext/foundation/utils/textx"
)

func newPolicyCmd(o *options) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Show the active capacity policy",
		Long: `Show the capacity policy in effect after --config has been applied.
With --watch, keep running and print the policy after every reload of the
config file until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printPolicy(out, textx.CurrentPolicy())
			if !watch {
				return nil
			}
			if o.cfg == nil {
				return fmt.Errorf("--watch requires --config")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := textx.WatchConfig(ctx, o.cfg); err != nil {
				return err
			}
			defer o.cfg.StopWatching()
			o.cfg.OnChange(func(_, _ *config.Config) {
				printPolicy(out, textx.CurrentPolicy())
			})

			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "print the policy after each config reload")
	return cmd
}

func printPolicy(w io.Writer, p textx.Policy) {
	rows := []string{
		titleStyle.Render("capacity policy"),
		field("alignment", strconv.Itoa(p.Alignment)),
		field("max cap", strconv.Itoa(p.MaxCapacity)),
		field("pooled", strconv.FormatBool(p.PoolBlocks)),
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(rows, "\n")))
}
