package format

import (
	"fmt"

	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/constants"
	"github.com/julianstephens/datefmt/internal/datefmt"
)

// Options are shared by the format subcommands.
type Options struct {
	As     string `help:"Display format to use instead of the stored one (mm/dd/yyyy, dd/mm/yyyy, mm-dd-yyyy, dd-mm-yyyy)." placeholder:"FORMAT"`
	Strict bool   `help:"Fail on values that cannot be parsed instead of echoing them back."`
}

type DateCmd struct {
	Options
	Values []string `arg:"" help:"Stored dates (yyyy-mm-dd)."`
}

func (c *DateCmd) Run(ctx *cli.Context) error {
	return run(ctx, c.Options, c.Values, (*datefmt.Formatter).DisplayDate, (*datefmt.Formatter).FormatDate)
}

type DateTimeCmd struct {
	Options
	Values []string `arg:"" help:"Stored date-times (yyyy-mm-dd HH:ii:ss)."`
}

func (c *DateTimeCmd) Run(ctx *cli.Context) error {
	return run(ctx, c.Options, c.Values, (*datefmt.Formatter).DisplayDateTime, (*datefmt.Formatter).FormatDateTime)
}

type TimeCmd struct {
	Options
	Values []string `arg:"" help:"Stored times (HH:ii)."`
}

func (c *TimeCmd) Run(ctx *cli.Context) error {
	return run(ctx, c.Options, c.Values, (*datefmt.Formatter).DisplayTime, (*datefmt.Formatter).FormatTime)
}

func run(
	ctx *cli.Context,
	opts Options,
	values []string,
	strict func(*datefmt.Formatter, string) (string, error),
	soft func(*datefmt.Formatter, string) string,
) error {
	f, err := ctx.Formatter(constants.DisplayFormat(opts.As))
	if err != nil {
		return err
	}

	for _, v := range values {
		if !opts.Strict {
			ctx.Println(soft(f, v))
			continue
		}
		out, err := strict(f, v)
		if err != nil {
			return fmt.Errorf("failed to format value: %w", err)
		}
		ctx.Println(out)
	}
	return nil
}
