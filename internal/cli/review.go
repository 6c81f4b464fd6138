package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"recruit-backend/internal/backend"
	"recruit-backend/internal/evaluation"
	"recruit-backend/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review <application-id>",
	Short: "Print the reviewer view of one application",
	Args:  cobra.ExactArgs(1),
	RunE:  runReview,
}

var boardCmd = &cobra.Command{
	Use:   "board <job-posting-id>",
	Short: "Print the applicant board of a job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoard,
}

func init() {
	boardCmd.Flags().String("tab", string(evaluation.CategoryInProgress), "Tab: in-progress, completed or not-met")
}

func reviewService(cmd *cobra.Command) (*review.Service, error) {
	cfg := getConfigFromContext(cmd.Context())
	client, err := newBackendClient(cfg)
	if err != nil {
		return nil, err
	}
	svc := review.NewService(client)
	svc.Rules = evaluation.ScoreRules{DefaultMax: cfg.DefaultTotalScore, DefaultPassing: cfg.DefaultPassingScore}
	svc.Location = cfg.Location()
	return svc, nil
}

func runReview(cmd *cobra.Command, args []string) error {
	svc, err := reviewService(cmd)
	if err != nil {
		return err
	}
	view, err := svc.ApplicationReview(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", backend.UserMessage(err), err)
	}
	return writeJSON(cmd.OutOrStdout(), view)
}

func runBoard(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("tab")
	tab, ok := evaluation.ParseCategory(raw)
	if !ok {
		return fmt.Errorf("unknown tab %q", raw)
	}
	svc, err := reviewService(cmd)
	if err != nil {
		return err
	}
	board, err := svc.Board(cmd.Context(), args[0], tab)
	if err != nil {
		return fmt.Errorf("%s: %w", backend.UserMessage(err), err)
	}
	return writeJSON(cmd.OutOrStdout(), board)
}
