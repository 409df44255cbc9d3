// Package cmd provides command-line interface commands for jprof
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/jprof/pkg/context"
	"github.com/yeisme/jprof/pkg/profile"
	"github.com/yeisme/jprof/pkg/style"
	log2 "github.com/yeisme/jprof/pkg/utils/log"
	"github.com/yeisme/jprof/pkg/utils/version"
)

var (
	jprofCtx *context.JprofContext
	log      log2.Logger

	// Global flags
	configPathFlag string
	debugFlag      bool
	verboseFlag    bool
	quietFlag      bool

	// Root command flags
	versionEnableFlag bool
	skipInvalidFlag   bool
	maxValuesFlag     int
	maxStrLenFlag     int
	colorFlag         string
	noColorFlag       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jprof [file...]",
	Short: "jprof profiles the structure and value distributions of JSON streams",
	Long: `jprof reads line-delimited JSON (one value per line) and prints a
structural summary: for every path through the document shape it reports the
observed types, counts, key/length ranges and the most frequent values.

With no file arguments the stream is read from standard input.

Examples:
  # Profile a log file
  jprof events.ndjson

  # Profile the output of another tool
  kubectl get pods -o json | jq -c '.items[]' | jprof

  # Tolerate occasional garbage lines
  jprof --skip-invalid mixed.log`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionEnableFlag {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return nil
		}
		return runProfile(cmd, args)
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		ctx, err := context.InitJprofContext(configPathFlag, debugFlag, verboseFlag, quietFlag)
		if err != nil {
			return err
		}

		jprofCtx = ctx
		log = ctx.Logger

		applyColorMode(cmd)

		log.Info().Msgf("Execute Command: %s %s", "jprof", strings.Join(os.Args[1:], " "))
		return nil
	},
}

// applyColorMode 在所有子命令执行前统一决定是否着色
// 标志覆盖配置：--no-color > --color > display.color
func applyColorMode(cmd *cobra.Command) {
	display := jprofCtx.Config.Display
	if cmd.Root().PersistentFlags().Changed("color") {
		display.Color = colorFlag
	}
	if noColorFlag {
		display.Color = "never"
	}
	if display.ColorEnabled(os.Stdout) {
		style.EnableColor()
	} else {
		style.DisableColor()
	}
}

// runProfile 执行主流程：摄取输入并打印报告
func runProfile(cmd *cobra.Command, args []string) error {
	cfg := jprofCtx.Config

	opts := profile.Options{
		MaxValuesToShow: cfg.Profile.MaxValuesToShow,
		MaxStringLength: cfg.Profile.MaxStringLength,
		SkipInvalid:     cfg.Profile.SkipInvalid,
	}
	if cmd.Flags().Changed("max-values") {
		opts.MaxValuesToShow = maxValuesFlag
	}
	if cmd.Flags().Changed("max-string-length") {
		opts.MaxStringLength = maxStrLenFlag
	}
	if skipInvalidFlag {
		opts.SkipInvalid = true
	}

	p := profile.NewProfiler(opts)

	if len(args) == 0 {
		if err := p.Consume(os.Stdin); err != nil {
			return err
		}
	} else {
		for _, name := range args {
			f, err := os.Open(name)
			if err != nil {
				return fmt.Errorf("open %s: %w", name, err)
			}
			err = p.Consume(f)
			_ = f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}

	log.Debug().
		Int("lines", p.Lines()).
		Int("values", p.Values()).
		Int("skipped", p.Skipped()).
		Msg("ingestion finished")

	return p.Report(os.Stdout)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "suppress all output except errors")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output (same as --color=never)")

	rootCmd.Flags().BoolVarP(&versionEnableFlag, "version", "v", false, "show version information")
	rootCmd.Flags().BoolVar(&skipInvalidFlag, "skip-invalid", false, "skip lines that fail to decode or exceed the line size limit, instead of aborting")
	rootCmd.Flags().IntVar(&maxValuesFlag, "max-values", profile.DefaultMaxValuesToShow, "number of top values shown per distribution")
	rootCmd.Flags().IntVar(&maxStrLenFlag, "max-string-length", profile.DefaultMaxStringLength, "display width at which strings are truncated")
}
