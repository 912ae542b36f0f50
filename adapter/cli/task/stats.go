package task

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/felixgeelhaar/tarefas/internal/productivity/application/commands"
	"github.com/felixgeelhaar/tarefas/internal/productivity/domain/task"
	"github.com/felixgeelhaar/tarefas/pkg/observability"
	"github.com/spf13/cobra"
)

var errMetricsDisabled = errors.New("metrics are not enabled")

func newStatsCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show session counters",
		Long: `Show how many tasks exist, the events emitted so far and the timing of
each operation. --raw prints every recorded metric key instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp()
			if err != nil {
				return err
			}
			if app.Metrics == nil {
				return errMetricsDisabled
			}

			if raw {
				printRawMetrics(cmd, app.Metrics)
				return nil
			}
			printSummary(cmd, app.Metrics)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print every metric key")
	return cmd
}

func printSummary(cmd *cobra.Command, m *observability.InMemoryMetrics) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tasks: %g\n", m.GetGauge(observability.MetricTaskCount))

	fmt.Fprintln(out, "Events:")
	for _, key := range task.RoutingKeys() {
		count := m.GetCounter(observability.MetricTaskEvents, observability.T("routing_key", key))
		fmt.Fprintf(out, "  %-28s %d\n", key, count)
	}

	fmt.Fprintln(out, "Operations:")
	for _, op := range commands.Operations() {
		tags := commands.OperationTags(op)
		total := m.GetCounter(observability.MetricOperationTotal, tags...)
		failed := m.GetCounter(observability.MetricOperationErrors, tags...)
		fmt.Fprintf(out, "  %-12s %d calls, %d errors, avg %s\n", op, total, failed,
			average(m.GetTimings(observability.MetricOperationDuration, tags...)))
	}
}

func printRawMetrics(cmd *cobra.Command, m *observability.InMemoryMetrics) {
	out := cmd.OutOrStdout()
	counters := m.Counters()
	for _, key := range slices.Sorted(maps.Keys(counters)) {
		fmt.Fprintf(out, "%-70s %d\n", key, counters[key])
	}
	gauges := m.Gauges()
	for _, key := range slices.Sorted(maps.Keys(gauges)) {
		fmt.Fprintf(out, "%-70s %g\n", key, gauges[key])
	}
}

func average(timings []time.Duration) time.Duration {
	if len(timings) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range timings {
		sum += d
	}
	return sum / time.Duration(len(timings))
}
