package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var (
	streamType  string
	streamDelay time.Duration
	streamFail  bool
	streamDone  string
)

var streamCmd = &cobra.Command{
	Use:   "stream <title> [step...]",
	Short: "Show steps on a spinner",
	Long: `Start a spinner showing the title, show each step in turn for --delay, then
finish with a success or failure mark. Without a terminal the spinner is
replaced by tagged plain lines.`,
	Example: `  conlog stream "Deploying" build push migrate --delay 500ms`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		title := args[0]
		s := factory.Get(streamType).Text(title).ToStream("")
		if err := s.StartContext(ctx); err != nil {
			return err
		}

		for _, step := range args[1:] {
			s.Text(title, "·", step)
			if err := s.AsyncUpdate(ctx, streamDelay); err != nil {
				_ = s.FailContext(context.Background(), title+" interrupted")
				return err
			}
		}

		final := streamDone
		if final == "" {
			final = title
		}
		if streamFail {
			return s.FailContext(ctx, final)
		}

		return s.SucceedContext(ctx, final)
	},
}

func init() {
	rootCmd.AddCommand(streamCmd)

	streamCmd.Flags().StringVarP(&streamType, "type", "t", "info", "Record type used for the spinner text")
	streamCmd.Flags().DurationVar(&streamDelay, "delay", 300*time.Millisecond, "Time each step stays on screen")
	streamCmd.Flags().BoolVar(&streamFail, "fail", false, "Finish with a failure mark")
	streamCmd.Flags().StringVar(&streamDone, "done", "", "Final message (default: the title)")
}
