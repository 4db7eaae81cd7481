package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwtext/foundation/core/config"
	mdwlog "github.com/msto63/mdwtext/foundation/core/log"
	"github.com/msto63/mdwtext/foundation/utils/textx"
)

// options holds the persistent flags shared by all subcommands.
type options struct {
	cfgFile   string
	verbose   bool
	logFormat string
	cfg       *config.Config
}

// NewRootCmd builds the mdwtext command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "mdwtext",
		Short: "mdwtext - text buffer toolkit",
		Long: `mdwtext applies text buffer operations to arguments or stdin lines.

Commands:
  apply    - trim, replace, case-fold and truncate each line
  inspect  - show storage mode, length, capacity and hash
  compare  - order two values
  policy   - show or watch the capacity policy`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (TOML or YAML)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&o.logFormat, "log-format", "text", "log format for verbose output (text, json, logfmt)")

	root.AddCommand(
		newApplyCmd(),
		newInspectCmd(),
		newCompareCmd(),
		newPolicyCmd(o),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) setup(cmd *cobra.Command) error {
	if o.verbose {
		format, err := mdwlog.ParseFormat(o.logFormat)
		if err != nil {
			return fmt.Errorf("invalid --log-format: %w", err)
		}
		logger := mdwlog.GetDefault().
			WithLevel(mdwlog.LevelDebug).
			WithFormat(format).
			WithOutput(cmd.ErrOrStderr())
		mdwlog.SetDefault(logger)
		textx.SetLogger(logger.WithName("textx"))
	}
	if o.cfgFile == "" {
		return nil
	}

	cfg, err := config.LoadWithOptions(o.cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "MDWTEXT",
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := textx.ApplyConfig(cfg); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	o.cfg = cfg
	return nil
}

// inputLines returns args when given, otherwise the lines read from in.
func inputLines(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
