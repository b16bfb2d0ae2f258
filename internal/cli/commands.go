package cli

import (
	"time"

	v1 "github.com/aevon-lab/interval/internal/api/v1"
	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "parse <interval>",
		Short:         "Parse an interval and print its canonical form",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			v, err := interval.Parse(args[0])
			if err != nil {
				return f.Error(err)
			}
			f.VerboseLog("months=%d days=%d seconds=%d", v.Months(), v.Days(), v.Seconds())
			return f.Success(v.String(), v1.NewIntervalResponse(v))
		},
	}
}

// NewCombineCommand creates the combine command.
func NewCombineCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "combine <interval> <interval>...",
		Short:         "Add intervals field by field",
		Args:          cobra.MinimumNArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			sum := interval.Zero
			for _, arg := range args {
				v, err := interval.Parse(arg)
				if err != nil {
					return f.Error(err)
				}
				sum = sum.Combine(v)
			}
			return f.Success(sum.String(), v1.NewIntervalResponse(sum))
		},
	}
}

// NewScaleCommand creates the scale command.
func NewScaleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scale <interval> <factor>",
		Short: "Multiply an interval by a decimal factor",
		Long: `Multiply every field of an interval by a decimal factor.
Each product is truncated toward zero; fractions never carry into a
smaller unit.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			v, err := interval.Parse(args[0])
			if err != nil {
				return f.Error(err)
			}
			k, err := decimal.NewFromString(args[1])
			if err != nil {
				return f.Error(&argumentError{arg: args[1], err: err})
			}
			out := v.ScaleDecimal(k)
			return f.Success(out.String(), v1.NewIntervalResponse(out))
		},
	}
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "apply <interval> <time>",
		Short:         "Add an interval to an RFC 3339 timestamp",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			v, err := interval.Parse(args[0])
			if err != nil {
				return f.Error(err)
			}
			at, err := parseTime(args[1])
			if err != nil {
				return f.Error(err)
			}
			res, err := v.Apply(interval.TimeOperand(at))
			if err != nil {
				return f.Error(err)
			}
			return f.Success(res.Time.Format(time.RFC3339Nano), v1.TimeResponse{Time: res.Time})
		},
	}
}

// NewBetweenCommand creates the between command.
func NewBetweenCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "between <from> <to>",
		Short:         "Print the interval between two RFC 3339 timestamps",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			from, err := parseTime(args[0])
			if err != nil {
				return f.Error(err)
			}
			to, err := parseTime(args[1])
			if err != nil {
				return f.Error(err)
			}
			out := interval.Between(from, to)
			return f.Success(out.String(), v1.NewIntervalResponse(out))
		},
	}
}

// NewTerseCommand creates the terse command.
func NewTerseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "terse <interval>",
		Short:         "Render a clock-only interval as e.g. \"01hr 30min\"",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			v, err := interval.Parse(args[0])
			if err != nil {
				return f.Error(err)
			}
			text, err := v.Terse()
			if err != nil {
				return f.Error(err)
			}
			return f.Success(text, v1.TerseResponse{Text: text})
		},
	}
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &argumentError{arg: s, err: err}
	}
	return t, nil
}
