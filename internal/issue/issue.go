// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	InvalidParameterId
	UnknownBenchmarkId
	InvalidOutputFormatId
	ReportWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id
	mdMsg    MarkdownMsg
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue as terminal Markdown using the given glamour
// style ("dark", "light", "notty", or a path to a JSON style).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.MarkdownMsg()))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file exists but could not be read or does not match the schema.

## Things you can try:
- Show the configuration benchsuite is actually using:
~~~
$ benchsuite config show
~~~
- Regenerate a default file and edit from there:
~~~
$ benchsuite config init
~~~
- Remove the file entirely; benchsuite runs with the built-in parameters without one.`,
		docLinks: []HttpLink{
			"https://cuelang.org/docs/",
		},
	}

	invalidParameterIssue = &Issue{
		id: InvalidParameterId,
		mdMsg: `
# Invalid benchmark parameter!

Every parameter must be a non-negative integer. Recursive workloads are capped
so their results cannot overflow: fibonacci at 92 and binary_trees at 30.

## Built-in parameters:
~~~cue
params: {
	fibonacci:    42
	sieve:        10000000
	mandelbrot:   2000
	matrix:       500
	binary_trees: 18
}
~~~`,
		docLinks: []HttpLink{
			"https://en.wikipedia.org/wiki/Fibonacci_sequence",
			"https://en.wikipedia.org/wiki/Binary_tree",
		},
	}

	unknownBenchmarkIssue = &Issue{
		id: UnknownBenchmarkId,
		mdMsg: `
# Unknown benchmark!

The name passed to ` + "`--only`" + ` does not match any benchmark.

## Things you can try:
- List the available benchmarks:
~~~
$ benchsuite list
~~~
- Separate several names with commas: ` + "`--only fibonacci,matrix`",
		docLinks: []HttpLink{
			"https://en.wikipedia.org/wiki/Sieve_of_Eratosthenes",
			"https://en.wikipedia.org/wiki/Mandelbrot_set",
		},
	}

	invalidOutputFormatIssue = &Issue{
		id: InvalidOutputFormatId,
		mdMsg: `
# Invalid output format!

Supported formats are ` + "`text`" + ` (default), ` + "`json`" + ` and ` + "`toml`" + `.`,
		docLinks: []HttpLink{
			"https://www.json.org/json-en.html",
			"https://toml.io/en/v1.0.0",
		},
	}

	reportWriteFailedIssue = &Issue{
		id: ReportWriteFailedId,
		mdMsg: `
# Failed to write the report!

Results could not be written to standard output. If output is piped, check
that the reading process is still running.`,
	}

	// ordered lists catalog entries by Id.
	ordered = []*Issue{
		configLoadFailedIssue,
		invalidParameterIssue,
		unknownBenchmarkIssue,
		invalidOutputFormatIssue,
		reportWriteFailedIssue,
	}
)

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	idx := slices.IndexFunc(ordered, func(i *Issue) bool { return i.Id() == id })
	if idx < 0 {
		return nil
	}
	return ordered[idx]
}
