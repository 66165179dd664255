package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vodleecher/leecher/internal/config"
	"github.com/vodleecher/leecher/internal/logger"
	"github.com/vodleecher/leecher/internal/search"
)

func newIDsCmd(cfg *config.Config) *cobra.Command {
	var (
		flags     criteriaFlags
		canonical bool
	)

	cmd := &cobra.Command{
		Use:   "ids",
		Short: "Print what a search would look up",
		Long: `Print the normalized lookup keys of valid criteria, one per line.

In channel mode this is the case-folded channel name. In urls and ids mode
it is the list of video IDs in input order; with --canonical, URL mode
prints the canonical URL of each video where the host has one.

Examples:
  leecher ids --mode channel --channel SomeChannel
  leecher ids --mode urls --url https://m.twitch.tv/videos/42 --canonical`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			c, err := flags.build(cmd)
			if err != nil {
				return err
			}

			snap, err := c.Snapshot()
			if err != nil {
				return err
			}
			logger.Default().WithComponent("ids").Debug(ctx, "criteria snapshot taken", map[string]interface{}{
				"snapshot_id": snap.ID.String(),
			})

			if c.SearchMode() == search.ModeChannel {
				fmt.Fprintln(out, c.ChannelQuery())
				return nil
			}

			if canonical && c.SearchMode() == search.ModeURLs {
				results, _ := c.ResolvedURLs()
				for _, r := range results {
					if r.Canonical != "" {
						fmt.Fprintln(out, r.Canonical)
					} else {
						fmt.Fprintln(out, r.URL)
					}
				}
				return nil
			}

			ids, _ := c.VideoIDs()
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	flags.register(cmd, cfg)
	cmd.Flags().BoolVar(&canonical, "canonical", false, "Print canonical URLs instead of IDs in urls mode")
	return cmd
}
