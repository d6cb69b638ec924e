package parse

import (
	"fmt"

	"github.com/julianstephens/datefmt/internal/cli"
	"github.com/julianstephens/datefmt/internal/constants"
)

type DateCmd struct {
	Input        string `arg:"" help:"Date as typed by a user, e.g. 07/03/2024."`
	DisplayFirst bool   `help:"Try the stored display format's day/month order first." xor:"strategy"`
	Lenient      bool   `help:"Also accept written forms such as 'March 7, 2024'." xor:"strategy"`
}

func (c *DateCmd) Run(ctx *cli.Context) error {
	f, err := ctx.Formatter("")
	if err != nil {
		return err
	}

	parse := f.ParseDate
	switch {
	case c.Lenient:
		parse = f.ParseDateLenient
	case c.DisplayFirst:
		parse = f.ParseDateDisplayFirst
	}

	t, err := parse(c.Input)
	if err != nil {
		return fmt.Errorf("failed to parse date: %w", err)
	}
	ctx.Println(t.Format(constants.DateFormat))
	return nil
}

type DateTimeCmd struct {
	Input string `arg:"" help:"Date-time as shown by 'datefmt format datetime'."`
}

func (c *DateTimeCmd) Run(ctx *cli.Context) error {
	f, err := ctx.Formatter("")
	if err != nil {
		return err
	}

	t, err := f.ParseDateTime(c.Input)
	if err != nil {
		return fmt.Errorf("failed to parse date-time: %w", err)
	}
	ctx.Println(t.Format(constants.DateTimeFormat))
	return nil
}

type TimeCmd struct {
	Input string `arg:"" help:"24-hour time, H:MM or HH:MM."`
}

func (c *TimeCmd) Run(ctx *cli.Context) error {
	f, err := ctx.Formatter("")
	if err != nil {
		return err
	}

	t, err := f.ParseTime(c.Input)
	if err != nil {
		return fmt.Errorf("failed to parse time: %w", err)
	}
	ctx.Println(t.Format(constants.TimeFormat))
	return nil
}
