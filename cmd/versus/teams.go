package main

import (
	"fmt"

	"github.com/spf13/cobra"

	appteams "github.com/preston-bernstein/worldcup-versus-service/internal/app/teams"
	"github.com/preston-bernstein/worldcup-versus-service/internal/report"
)

func newTeamsCmd(opts *rootOptions) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List every team that appears in the match records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, provider, err := opts.load(cmd)
			if sess == nil {
				return err
			}
			svc := appteams.NewService(sess, provider)
			if err != nil {
				report.PrintRoster(cmd.OutOrStdout(), svc.Teams())
				return err
			}

			if !cmd.Flags().Changed("search") {
				report.PrintRoster(cmd.OutOrStdout(), svc.Teams())
				return nil
			}
			found, err := svc.Search(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("search teams: %w", err)
			}
			report.PrintRoster(cmd.OutOrStdout(), found)
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "search", "", "filter the upstream teams listing by name or code")
	return cmd
}
