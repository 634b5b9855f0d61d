package main

import (
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/worldcup-versus-service/internal/app/versus"
	"github.com/preston-bernstein/worldcup-versus-service/internal/report"
	"github.com/preston-bernstein/worldcup-versus-service/internal/session"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "compare <teamA> <teamB>",
		Short:   "Compare two teams by code, e.g. compare BRA ARG",
		Args:    cobra.ExactArgs(2),
		Example: "  versus compare BRA ARG\n  versus compare ger ned --provider fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := opts.load(cmd)
			if sess == nil {
				return err
			}
			svc := versus.NewService(sess)
			if err != nil {
				report.PrintComparison(cmd.OutOrStdout(), svc.Current())
				return err
			}

			if err := sess.Select(session.SlotA, args[0]); err != nil {
				return err
			}
			if err := sess.Select(session.SlotB, args[1]); err != nil {
				return err
			}
			report.PrintComparison(cmd.OutOrStdout(), svc.Current())
			return nil
		},
	}
}
