package common

import (
	"fmt"
	"io"

	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/urfave/cli/v2"
)

const (
	ParamQuery    = "query"
	ParamGlob     = "glob"
	ParamSort     = "sort"
	ParamPage     = "page"
	ParamPageSize = "page-size"
)

func WithListFlags(sortKeys []string, flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:    ParamQuery,
			Aliases: []string{"q"},
			Usage:   "Only show items containing the given text (case insensitive)",
		},
		&cli.StringFlag{
			Name:  ParamGlob,
			Usage: "Only show items whose name matches the given glob pattern, e.g. 'Jean*'",
		},
		&cli.StringFlag{
			Name:  ParamSort,
			Usage: fmt.Sprintf("Sort key, prefixed with '-' for descending order (available: %v)", sortKeys),
		},
		&cli.IntFlag{
			Name:  ParamPage,
			Value: 1,
			Usage: "Page number",
		},
		&cli.IntFlag{
			Name:  ParamPageSize,
			Value: 0,
			Usage: "Number of items per page, 0 to show every item",
		},
	}, flags...)
}

func GetListOptions(ctx *cli.Context) service.ListOptions {
	return service.ListOptions{
		Query:    ctx.String(ParamQuery),
		Glob:     ctx.String(ParamGlob),
		Sort:     ctx.String(ParamSort),
		Page:     ctx.Int(ParamPage),
		PageSize: ctx.Int(ParamPageSize),
	}
}

// PageFooter prints the pagination summary under a list.
func PageFooter(w io.Writer, page listing.Page) {
	if page.TotalPages <= 1 {
		fmt.Fprintf(w, "\n%d item(s)\n", page.TotalItems)
		return
	}

	fmt.Fprintf(w, "\nPage %d/%d, %d item(s)\n", page.Number, page.TotalPages, page.TotalItems)
}
