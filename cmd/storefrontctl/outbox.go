package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
)

var (
	listType   string
	listStatus string
	listLimit  int64

	completedRetentionDays int
	failedRetentionDays    int
	dryRun                 bool
)

var outboxCmd = &cobra.Command{
	Use:   "outbox",
	Short: "Inspect and clean the Spanner outbox_events table",
}

var outboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List outbox events, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openSpanner(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		events, err := store.Outbox().ListEvents(cmd.Context(), repo.EventFilter{
			EventType: listType,
			Status:    listStatus,
			Limit:     listLimit,
		})
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No events found")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "EVENT ID\tTYPE\tAGGREGATE\tSTATUS\tCREATED\tRETRIES")
		for _, e := range events {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
				e.EventID, e.EventType, e.AggregateID, e.Status, e.CreatedAt.Format(time.RFC3339), e.RetryCount)
		}
		return w.Flush()
	},
}

var outboxCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete processed events older than their retention window",
	RunE: func(cmd *cobra.Command, args []string) error {
		policies, err := retentionPolicies(time.Now().UTC(), completedRetentionDays, failedRetentionDays)
		if err != nil {
			return err
		}

		store, err := openSpanner(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		var total int64
		for _, p := range policies {
			n, err := store.Outbox().Purge(cmd.Context(), p.status, p.cutoff, dryRun)
			if err != nil {
				return err
			}
			logr.Info("outbox cleanup",
				zap.String("status", p.status),
				zap.Time("cutoff", p.cutoff),
				zap.Int64("events", n),
				zap.Bool("dry_run", dryRun),
			)
			total += n
		}

		if dryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "Dry run: %d events would be deleted\n", total)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d events\n", total)
		}
		return nil
	},
}

type retentionPolicy struct {
	status string
	cutoff time.Time
}

// retentionPolicies returns the purge cutoff per terminal status.
func retentionPolicies(now time.Time, completedDays, failedDays int) ([]retentionPolicy, error) {
	if completedDays < 1 || failedDays < 1 {
		return nil, errors.New("retention must be at least one day")
	}
	return []retentionPolicy{
		{status: m_outbox.StatusCompleted, cutoff: now.AddDate(0, 0, -completedDays)},
		{status: m_outbox.StatusFailed, cutoff: now.AddDate(0, 0, -failedDays)},
	}, nil
}

func openSpanner(cmd *cobra.Command) (*repo.Store, error) {
	if cfg.SpannerDatabase == "" {
		return nil, errors.New("SPANNER_DATABASE is required for outbox commands")
	}
	return repo.NewStore(cmd.Context(), cfg.SpannerDatabase)
}

func init() {
	outboxListCmd.Flags().StringVar(&listType, "type", "", "filter by event type, e.g. order.placed")
	outboxListCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (pending, processing, completed, failed)")
	outboxListCmd.Flags().Int64Var(&listLimit, "limit", repo.DefaultEventLimit, "maximum events to show")

	outboxCleanupCmd.Flags().IntVar(&completedRetentionDays, "completed-retention", 30, "days to keep completed events")
	outboxCleanupCmd.Flags().IntVar(&failedRetentionDays, "failed-retention", 90, "days to keep failed events")
	outboxCleanupCmd.Flags().BoolVar(&dryRun, "dry-run", false, "count matching events without deleting")

	outboxCmd.AddCommand(outboxListCmd, outboxCleanupCmd)
}
