package main

import (
	"flag"
	"fmt"

	"github.com/trezcool/escolar/core"
)

const defaultPageSize = 10

type listOptions struct {
	filter string
	sort   string
	desc   bool
	page   int
	size   int
}

func defaultListOptions() *listOptions {
	return &listOptions{page: 1, size: defaultPageSize}
}

func bindListOptions(fs *flag.FlagSet) *listOptions {
	opts := defaultListOptions()
	fs.StringVar(&opts.filter, "filter", "", "Only show rows matching this text.")
	fs.StringVar(&opts.sort, "sort", "", "Column to sort by.")
	fs.BoolVar(&opts.desc, "desc", false, "Sort in descending order.")
	fs.IntVar(&opts.page, "page", 1, "Page to show, starting at 1.")
	fs.IntVar(&opts.size, "size", defaultPageSize, "Rows per page.")
	return opts
}

// window returns the bounds of the requested page over total rows and the page actually shown.
// Pages past the end fall back to the first one, as happens after narrowing with a filter.
func (opts *listOptions) window(total int) (start, end, page, pages int) {
	pages = core.PageCount(total, opts.size)
	page = opts.page
	if page < 1 || page > pages {
		page = 1
	}
	start, end = core.Paginate(total, page-1, opts.size)
	return start, end, page, pages
}

func (cli *commandLine) printFooter(page, pages, total int, noun string) {
	fmt.Fprintf(cli.out, "Page %d of %d, %d %s\n", page, pages, total, noun)
}
