package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/tools"
)

func newToolCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdTool,
		Short: config.ShortTool,
	}
	cmd.AddCommand(
		newBase64Cmd(),
		newTextCmd(),
		newPasswordCmd(),
		newBMICmd(),
		newConvertCmd(),
		newTimezoneCmd(c),
	)
	return cmd
}

// textInput joins the arguments, or reads stdin when there are none.
func textInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), config.CLIMaxInput+1))
	if err != nil {
		return "", err
	}
	if len(data) > config.CLIMaxInput {
		return "", fmt.Errorf("%s: %d bytes", config.ErrTextTooLong, len(data))
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: %q", config.ErrNumber, s)
	}
	return f, nil
}

func newBase64Cmd() *cobra.Command {
	mode := config.ModeEncode

	cmd := &cobra.Command{
		Use:   config.CmdBase64,
		Short: config.ShortBase64,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(cmd, args)
			if err != nil {
				return err
			}

			var out string
			switch mode {
			case config.ModeEncode:
				out = tools.EncodeBase64(text)
			case config.ModeDecode:
				if out, err = tools.DecodeBase64(text); err != nil {
					return err
				}
			default:
				return fmt.Errorf("%s: %q", config.ErrUnknownMode, mode)
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.CLIResult, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, config.FlagMode, mode, config.FlagDescMode)
	return cmd
}

func newTextCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   config.CmdText,
		Short: config.ShortText,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(cmd, args)
			if err != nil {
				return err
			}

			var converted string
			if mode != "" {
				if converted, err = tools.ConvertCase(text, mode); err != nil {
					return err
				}
			}

			st := tools.CountText(text)
			w := cmd.OutOrStdout()
			for _, row := range []struct {
				label string
				value int
			}{
				{config.LabelCharacters, st.Characters},
				{config.LabelNoSpaces, st.CharactersNoSpaces},
				{config.LabelWords, st.Words},
				{config.LabelSentences, st.Sentences},
				{config.LabelParagraphs, st.Paragraphs},
				{config.LabelReadingMin, st.ReadingMinutes},
			} {
				fmt.Fprintf(w, config.CLIKeyValue, labelStyle.Render(row.label), row.value)
			}
			if mode != "" {
				fmt.Fprintf(w, config.CLIKeyValue, labelStyle.Render(config.LabelConverted), converted)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, config.FlagCase, "", config.FlagDescCase)
	return cmd
}

func newPasswordCmd() *cobra.Command {
	opts := tools.DefaultPasswordOptions()

	cmd := &cobra.Command{
		Use:   config.CmdPassword,
		Short: config.ShortPassword,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := tools.GeneratePassword(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.CLIResult, pw)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Length, config.FlagLength, opts.Length, config.FlagDescLength)
	cmd.Flags().BoolVar(&opts.Symbols, config.FlagSymbols, opts.Symbols, config.FlagDescSymbols)
	return cmd
}

func newBMICmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdBMI,
		Short: config.ShortBMI,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			height, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			res, err := tools.BMI(weight, height)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.CLIBMIFormat, res.Value, res.Category)
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdConvert,
		Short: config.ShortConvert,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			out, err := tools.Convert(value, args[1], args[2])
			if errors.Is(err, tools.ErrUnitMismatch) {
				if q, qerr := tools.QuantityOf(args[1]); qerr == nil {
					fmt.Fprintf(cmd.ErrOrStderr(), config.CLIUnitsHint, q, strings.Join(tools.Units(q), config.ListSeparator))
				}
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.CLIConvFormat, value, args[1], out, args[2])
			return nil
		},
	}
}

func newTimezoneCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdTimezone,
		Short: config.ShortTimezone,
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]
			var value string
			if len(args) == 3 {
				value = args[2]
			}

			t, err := tools.SourceTime(c.clock.Now(), from, value)
			if err != nil {
				return err
			}

			res, err := tools.ConvertTimezone(t, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.CLITZFormat,
				res.From.Format(config.CLITimeLayout),
				res.To.Format(config.CLITimeLayout),
				res.OffsetDiff)
			return nil
		},
	}
}
