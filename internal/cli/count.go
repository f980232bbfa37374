package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rustbrew/pkg/pipeline"
)

// countOpts holds the command-line flags for counting.
type countOpts struct {
	lang      string // dependency to count formulae for
	buildDeps bool   // also print all build dependencies
	names     bool   // also print matching formula names
	refresh   bool   // download the catalog even if fresh
}

// countCommand creates the command that counts formulae depending on a
// language, build system or library. It becomes the root command.
func (c *CLI) countCommand() *cobra.Command {
	var opts countOpts

	cmd := &cobra.Command{
		Short: "Count Homebrew formulae built with a language, build system or library",
		Long: `Count all programs written/built in X language or Y build system or Z library
distributed via Homebrew Core, and optionally list the build dependencies of
every package in the catalog.

The catalog is cached in core_formulas.json and downloaded again once it is
more than a week old.`,
		Example: `  rustbrew              # formulae depending on rust
  rustbrew -l python    # python or python@3.x
  rustbrew -l cmake -b  # plus every distinct build dependency`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("lang") {
				opts.lang = c.Config.DefaultLang
				newUI(cmd.ErrOrStderr()).printWarning(
					"No language nor build system nor library is specified. Counting packages built in %s (by default):",
					displayName(opts.lang))
			}
			return c.runCount(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "count packages which have this language/build-system/library as a dependency")
	cmd.Flags().BoolVarP(&opts.buildDeps, "build-dep", "b", false, "show building dependencies for all packages in Homebrew Core")
	cmd.Flags().BoolVarP(&opts.names, "names", "n", false, "list the matching formulae")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "download the catalog even if the cached copy is fresh")

	return cmd
}

func (c *CLI) runCount(cmd *cobra.Command, opts countOpts) error {
	logger := loggerFromContext(cmd.Context())
	logger.Debug("counting formulae", "lang", opts.lang, "build_deps", opts.buildDeps)

	spin := newSpinner(cmd.Context(), cmd.ErrOrStderr(), "Reading Homebrew Core catalog...")
	spin.Start()
	result, err := c.newRunner().Execute(cmd.Context(), pipeline.Options{
		Query:     opts.lang,
		BuildDeps: opts.buildDeps,
		Names:     opts.names,
		Refresh:   opts.refresh,
	})
	spin.Stop()
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), result, opts)
}

// writeResult prints the count, then the build dependencies and names when
// requested. It only runs after every stage succeeded.
func writeResult(w io.Writer, res *pipeline.Result, opts countOpts) error {
	var b strings.Builder
	fmt.Fprintln(&b, res.Count)
	if opts.buildDeps {
		fmt.Fprintf(&b, "Build dependencies count: %d\n", len(res.BuildDependencies))
		fmt.Fprintln(&b, debugList(res.BuildDependencies))
	}
	if opts.names {
		for _, name := range res.Names {
			fmt.Fprintln(&b, name)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// debugList renders names as a quoted, comma-separated sequence:
// ["cmake", "rust"].
func debugList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// displayName capitalizes the query for messages ("rust" → "Rust").
func displayName(q string) string {
	r, size := utf8.DecodeRuneInString(q)
	if r == utf8.RuneError {
		return q
	}
	return string(unicode.ToUpper(r)) + q[size:]
}
