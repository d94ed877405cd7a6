package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mycelica/forest/internal/scenario"
)

var runWatch bool

var runCmd = &cobra.Command{
	Use:   "run <scenario.toml>",
	Short: "Replay a scripted sequence of unions and finds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		runner := &scenario.Runner{Logger: logger}
		if err := runScenario(runner, s); err != nil {
			return err
		}
		if !runWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		fmt.Fprintf(os.Stderr, "[run] Watching %s (Ctrl-C to stop)\n", args[0])
		return scenario.Watch(ctx, args[0], logger, func(s *scenario.Scenario, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "[run] Reload failed: %v\n", err)
				return
			}
			if err := runScenario(runner, s); err != nil {
				fmt.Fprintf(os.Stderr, "[run] %v\n", err)
			}
		})
	},
}

func init() {
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "Re-run whenever the scenario file changes")
	rootCmd.AddCommand(runCmd)
}

func runScenario(runner *scenario.Runner, s *scenario.Scenario) error {
	res, runErr := runner.Run(s)
	if res == nil {
		return runErr
	}
	logger.Debug("scenario finished", zap.String("name", res.Name), zap.Int("steps", len(res.Steps)))

	if cfg.JSON {
		if err := writeJSON(res); err != nil {
			return err
		}
		return runErr
	}
	printScenario(stdout, res)
	return runErr
}

func printScenario(w io.Writer, res *scenario.Result) {
	name := res.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "Scenario %s: %d elements\n", name, len(res.Universe))
	for _, st := range res.Steps {
		var outcome string
		switch st.Op {
		case scenario.OpFind:
			outcome = fmt.Sprintf("find(%s) = %s", st.X, st.Representative)
		case scenario.OpUnion, scenario.OpLink:
			verb := "merged"
			if !st.Merged {
				verb = "same set"
			}
			outcome = fmt.Sprintf("%s(%s, %s) %s", st.Op, st.X, st.Y, verb)
		case scenario.OpConnected:
			outcome = fmt.Sprintf("connected(%s, %s) = %v", st.X, st.Y, st.Connected)
		default:
			outcome = st.Op
		}
		fmt.Fprintf(w, "  %2d. %-28s %s  [%s]\n", st.Index, outcome, st.Parents, strings.Join(st.Representatives, " "))
	}
	// Representatives is only set once every step succeeded
	if res.Representatives != nil {
		fmt.Fprintf(w, "Sets: %d\n", res.Sets)
	}
}
