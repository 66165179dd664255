package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vodleecher/leecher/internal/config"
	apperrors "github.com/vodleecher/leecher/internal/errors"
	"github.com/vodleecher/leecher/internal/logger"
	"github.com/vodleecher/leecher/internal/search"
)

// newRootCmd represents the base command when called without any subcommands
func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leecher",
		Short: "Check VOD search criteria before a search is started",
		Long: `Leecher validates the criteria used to search for VODs to download.

A search runs in one of three modes:
  channel  look up the videos of a channel by name
  urls     download the videos behind a list of video URLs
  ids      download the videos with the given numeric IDs

Examples:
  leecher validate --mode channel --channel somechannel
  leecher validate --mode urls --url https://www.twitch.tv/videos/123456789
  leecher ids --mode ids --id 5 --id 7
  echo '{"search_mode":"ids","ids":"5\n7"}' | leecher validate --input -`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newValidateCmd(cfg))
	rootCmd.AddCommand(newIDsCmd(cfg))
	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute(args []string) int {
	cfg := config.Load()
	logger.SetDefault(logger.New(&logger.Config{
		Output:    os.Stderr,
		Level:     logger.ParseLevel(cfg.LogLevel),
		Component: "leecher",
	}))

	ctx := apperrors.WithOperationID(context.Background(), apperrors.GenerateOperationID())
	return run(ctx, newRootCmd(cfg), args, os.Stderr)
}

func run(ctx context.Context, cmd *cobra.Command, args []string, stderr io.Writer) int {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			// Errors not raised by our commands come from cobra's flag parsing.
			appErr = apperrors.BadRequest(err.Error())
		}
		if apperrors.IsClientError(appErr) {
			logger.Warn(ctx, "command rejected input", map[string]interface{}{
				"code": appErr.Code,
			})
		} else {
			logger.Error(ctx, "command failed", appErr)
		}
		apperrors.Write(stderr, apperrors.GetOperationID(ctx), appErr)
		return appErr.ExitCode
	}
	return apperrors.ExitOK
}

// criteriaFlags are the flags shared by commands that build criteria
type criteriaFlags struct {
	input   string
	mode    string
	kind    string
	channel string
	urls    []string
	ids     []string
	limit   int
}

func (f *criteriaFlags) register(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Read criteria from a JSON file, or - for stdin")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", cfg.DefaultSearchMode, "Search mode (channel, urls, ids)")
	cmd.Flags().StringVarP(&f.kind, "kind", "k", cfg.DefaultVideoKind, "Video kind (broadcast, highlight, upload)")
	cmd.Flags().StringVarP(&f.channel, "channel", "c", "", "Channel name")
	cmd.Flags().StringArrayVarP(&f.urls, "url", "u", nil, "Video URL (repeatable)")
	cmd.Flags().StringArrayVar(&f.ids, "id", nil, "Video ID (repeatable)")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", cfg.DefaultLoadLimit, "Maximum number of videos to load")
}

// build assembles criteria from flag defaults, then the input document,
// then any flag set explicitly on the command line.
func (f *criteriaFlags) build(cmd *cobra.Command) (*search.Criteria, error) {
	var values search.Values

	mode, err := search.ParseSearchMode(f.mode)
	if err != nil {
		return nil, err
	}
	kind, err := search.ParseVideoKind(f.kind)
	if err != nil {
		return nil, err
	}
	values.SearchMode = mode
	values.VideoKind = kind
	values.LoadLimit = f.limit

	if f.input != "" {
		if err := f.decodeInput(cmd, &values); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		values.SearchMode = mode
	}
	if flags.Changed("kind") {
		values.VideoKind = kind
	}
	if flags.Changed("channel") {
		values.Channel = f.channel
	}
	if flags.Changed("url") {
		values.URLs = strings.Join(f.urls, "\n")
	}
	if flags.Changed("id") {
		values.IDs = strings.Join(f.ids, "\n")
	}
	if flags.Changed("limit") {
		values.LoadLimit = f.limit
	}

	c := search.New(values.SearchMode)
	c.Apply(values)
	return c, nil
}

func (f *criteriaFlags) decodeInput(cmd *cobra.Command, values *search.Values) error {
	var (
		data []byte
		err  error
	)
	if f.input == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(f.input)
	}
	if err != nil {
		return apperrors.BadRequest("cannot read criteria input").WithCause(err)
	}

	if err := json.Unmarshal(data, values); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperrors.BadRequest("criteria input is not valid JSON").WithCause(err)
	}
	return nil
}
