package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"github.com/tartampluch/go-toolbox/internal/present"
)

type ageOptions struct {
	start    string
	asOf     string
	lang     string
	interval time.Duration
}

func (o *ageOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.start, config.FlagStart, "", config.FlagDescStart)
	cmd.Flags().StringVar(&o.lang, config.FlagLang, "", config.FlagDescLang)
}

// startInstant parses --start, falling back to the configured default.
func (o *ageOptions) startInstant(s config.Settings, loc *time.Location) (time.Time, error) {
	text := o.start
	if text == "" {
		text = s.DefaultStart
	}
	if text == "" {
		return time.Time{}, fmt.Errorf("%w: %s", engine.ErrDateParse, config.ErrDateMissing)
	}
	return engine.ParseInstant(text, loc)
}

func newAgeCmd(c *cli) *cobra.Command {
	var opts ageOptions

	cmd := &cobra.Command{
		Use:   config.CmdAge,
		Short: config.ShortAge,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := c.settings()
			if err != nil {
				return err
			}
			p := c.presenter(opts.lang, s)
			now := c.clock.Now()

			start, err := opts.startInstant(s, now.Location())
			if err != nil {
				return warn(cmd.ErrOrStderr(), p, err)
			}
			asOf := now
			if opts.asOf != "" {
				if asOf, err = engine.ParseInstant(opts.asOf, now.Location()); err != nil {
					return warn(cmd.ErrOrStderr(), p, err)
				}
			}

			d, err := engine.Compute(start, asOf)
			if err != nil {
				return warn(cmd.ErrOrStderr(), p, err)
			}
			renderDifference(cmd.OutOrStdout(), p, d)
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.asOf, config.FlagAsOf, "", config.FlagDescAsOf)
	return cmd
}

// renderDifference prints the calendar breakdown, the totals and the next
// anniversary, one labeled section each.
func renderDifference(w io.Writer, p *present.Presenter, d engine.Difference) {
	out := p.Format(d)

	section := func(key string, lines ...string) {
		fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf(config.CLILabelFormat, p.Msg(key))))
		for _, l := range lines {
			fmt.Fprintln(w, valueStyle.Render(l))
		}
	}
	section(config.TKeyLblCalendar, out.Calendar)
	section(config.TKeyLblTotals, out.Totals...)
	section(config.TKeyLblNextEvent, fmt.Sprintf(config.CLINextFormat, out.NextAnniversary, out.NextIn))
}

func newLiveCmd(c *cli) *cobra.Command {
	var opts ageOptions

	cmd := &cobra.Command{
		Use:   config.CmdLive,
		Short: config.ShortLive,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, err := c.settings()
			if err != nil {
				return err
			}
			p := c.presenter(opts.lang, s)

			start, err := opts.startInstant(s, c.clock.Now().Location())
			if err != nil {
				return warn(cmd.ErrOrStderr(), p, err)
			}
			interval := opts.interval
			if interval == 0 {
				interval = s.LiveInterval
			}
			if interval < config.MinLiveInterval {
				return fmt.Errorf("%s: %s", config.ErrLiveInterval, interval)
			}

			w := cmd.OutOrStdout()
			ticker := engine.NewTicker(c.clock, start, interval, func(d engine.Difference, _ time.Time, err error) {
				renderLive(w, p, d, err)
			})
			ticker.Run(cmd.Context())
			fmt.Fprintln(w)
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().DurationVar(&opts.interval, config.FlagInterval, 0, config.FlagDescInterval)
	return cmd
}

// renderLive rewrites the current terminal line. A start in the future
// shows the warning until the clock catches up.
func renderLive(w io.Writer, p *present.Presenter, d engine.Difference, err error) {
	if err != nil {
		key := config.TKeyErrInput
		if errors.Is(err, engine.ErrInvalidRange) {
			key = config.TKeyErrRange
		}
		fmt.Fprint(w, config.CLIClearLine+warnStyle.Render(p.Msg(key)))
		return
	}
	out := p.Format(d)
	fmt.Fprintf(w, config.CLILiveFormat, config.CLIClearLine, labelStyle.Render(out.Calendar), out.Totals[len(out.Totals)-1])
}
