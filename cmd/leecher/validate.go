package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/vodleecher/leecher/internal/config"
	apperrors "github.com/vodleecher/leecher/internal/errors"
	"github.com/vodleecher/leecher/internal/logger"
	"github.com/vodleecher/leecher/internal/search"
)

// validateReport is printed by the validate command
type validateReport struct {
	Valid    bool                `json:"valid"`
	Field    string              `json:"field,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
	Snapshot *search.Snapshot    `json:"snapshot,omitempty"`
}

func newValidateCmd(cfg *config.Config) *cobra.Command {
	var (
		flags criteriaFlags
		field string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate search criteria",
		Long: `Validate search criteria and print a JSON report.

Only the field used by the selected search mode is checked. When every
field is valid the report carries a snapshot of the criteria that a search
would run with. Exits with status 2 when the criteria are invalid.

Examples:
  leecher validate --mode ids --id 5 --id 7
  leecher validate --mode urls --url https://www.twitch.tv/videos/123 --field urls
  leecher validate --input criteria.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.Default().WithComponent("validate")

			c, err := flags.build(cmd)
			if err != nil {
				return err
			}

			if err := c.Validate(field); err != nil {
				return err
			}

			report := validateReport{
				Valid:  !c.HasErrors(),
				Field:  field,
				Errors: c.ErrorMap(),
			}
			if report.Valid && field == "" {
				snap, err := c.Snapshot()
				if err != nil {
					return err
				}
				report.Snapshot = &snap
			}

			log.Debug(ctx, "criteria validated", map[string]interface{}{
				"search_mode": c.SearchMode().String(),
				"valid":       report.Valid,
			})

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return apperrors.InternalError("cannot write report").WithCause(err)
			}
			return c.Err()
		},
	}

	flags.register(cmd, cfg)
	cmd.Flags().StringVarP(&field, "field", "f", "", "Validate a single field (channel, urls, ids)")
	return cmd
}
