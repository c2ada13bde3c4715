package cli

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bounded/pkg/bstring"
	"github.com/mesh-intelligence/bounded/pkg/vector"
)

// strResult is the JSON shape of string operations that yield a string.
type strResult struct {
	Op     string `json:"op"`
	Result string `json:"result"`
	Len    int    `json:"len"`
	Cap    int    `json:"cap"`
}

// indexResult is the JSON shape of Find and FindChar.
type indexResult struct {
	Op    string `json:"op"`
	Found bool   `json:"found"`
	Index int    `json:"index"`
}

func newStrCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "str",
		Short: "Run bounded string operations",
		Long:  "Each subcommand copies <text> into a bounded string of the configured capacity\nand applies one operation to it.",
	}

	cmd.AddCommand(
		a.strStringCmd("trim <text>", "Strip leading and trailing ASCII whitespace", 1,
			func(s *bstring.String, args []string) (*bstring.String, error) {
				return s.Trim(), nil
			}),
		a.strStringCmd("replace <text> <from> <to>", "Replace every occurrence of <from> with <to>", 3,
			func(s *bstring.String, args []string) (*bstring.String, error) {
				return s.Replace(args[0], args[1]), nil
			}),
		a.strStringCmd("slice <text> <start> <end>", "Print the bytes in [start, end)", 3,
			func(s *bstring.String, args []string) (*bstring.String, error) {
				start, end, err := parseRange(args[0], args[1])
				if err != nil {
					return nil, err
				}
				return s.Slice(start, end), nil
			}),
		a.strSplitCmd("split <text> <pattern>", "Split around every occurrence of <pattern>",
			func(s *bstring.String, arg string) (*vector.Vector[*bstring.String], error) {
				return s.Split(arg), nil
			}),
		a.strSplitCmd("splitchar <text> <char>", "Split at every occurrence of a single character",
			func(s *bstring.String, arg string) (*vector.Vector[*bstring.String], error) {
				c, err := parseChar(arg)
				if err != nil {
					return nil, err
				}
				return s.SplitChar(c), nil
			}),
		a.strIndexCmd("find <text> <pattern>", "Print the index of the first occurrence of <pattern>",
			func(s *bstring.String, arg string) (int, bool, error) {
				i, ok := s.Find(arg)
				return i, ok, nil
			}),
		a.strIndexCmd("findchar <text> <char>", "Print the index of the first occurrence of a character",
			func(s *bstring.String, arg string) (int, bool, error) {
				c, err := parseChar(arg)
				if err != nil {
					return 0, false, err
				}
				i, ok := s.FindChar(c)
				return i, ok, nil
			}),
		a.strContainsCmd(),
		a.strLenCmd(),
	)
	return cmd
}

// bounded copies text into a string of the configured capacity.
func (a *app) bounded(text string) *bstring.String {
	return bstring.From(a.cfg.Capacity, text)
}

func (a *app) strStringCmd(use, short string, nargs int,
	op func(s *bstring.String, args []string) (*bstring.String, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return guard(func() error {
				out, err := op(a.bounded(args[0]), args[1:])
				if err != nil {
					return userError(err)
				}
				res := strResult{Op: cmd.Name(), Result: out.String(), Len: out.Len(), Cap: out.Cap()}
				return a.emit(cmd, res, func(w io.Writer) {
					fmt.Fprintln(w, res.Result)
				})
			})
		},
	}
}

func (a *app) strSplitCmd(use, short string,
	op func(s *bstring.String, arg string) (*vector.Vector[*bstring.String], error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return guard(func() error {
				parts, err := op(a.bounded(args[0]), args[1])
				if err != nil {
					return userError(err)
				}
				segments := make([]string, 0, parts.Len())
				for _, p := range parts.All() {
					segments = append(segments, p.String())
				}
				res := struct {
					Op       string   `json:"op"`
					Segments []string `json:"segments"`
				}{cmd.Name(), segments}
				return a.emit(cmd, res, func(w io.Writer) {
					for _, s := range segments {
						fmt.Fprintln(w, strconv.Quote(s))
					}
				})
			})
		},
	}
}

func (a *app) strIndexCmd(use, short string,
	op func(s *bstring.String, arg string) (int, bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return guard(func() error {
				i, ok, err := op(a.bounded(args[0]), args[1])
				if err != nil {
					return userError(err)
				}
				res := indexResult{Op: cmd.Name(), Found: ok, Index: i}
				if !ok {
					res.Index = -1
				}
				return a.emit(cmd, res, func(w io.Writer) {
					if ok {
						fmt.Fprintln(w, i)
					} else {
						fmt.Fprintln(w, "not found")
					}
				})
			})
		},
	}
}

func (a *app) strContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <text> <pattern>",
		Short: "Report whether <pattern> occurs in <text>",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return guard(func() error {
				found := a.bounded(args[0]).Contains(args[1])
				res := struct {
					Op       string `json:"op"`
					Contains bool   `json:"contains"`
				}{cmd.Name(), found}
				return a.emit(cmd, res, func(w io.Writer) {
					fmt.Fprintln(w, found)
				})
			})
		},
	}
}

func (a *app) strLenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "len <text>",
		Short: "Print the byte length and capacity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return guard(func() error {
				s := a.bounded(args[0])
				res := strResult{Op: cmd.Name(), Result: s.String(), Len: s.Len(), Cap: s.Cap()}
				return a.emit(cmd, res, func(w io.Writer) {
					fmt.Fprintf(w, "len %d cap %d\n", res.Len, res.Cap)
				})
			})
		},
	}
}

// parseChar accepts exactly one character.
func parseChar(arg string) (rune, error) {
	if utf8.RuneCountInString(arg) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", arg)
	}
	r, _ := utf8.DecodeRuneInString(arg)
	return r, nil
}

func parseRange(startArg, endArg string) (int, int, error) {
	start, err := strconv.Atoi(startArg)
	if err != nil {
		return 0, 0, fmt.Errorf("start: %w", err)
	}
	end, err := strconv.Atoi(endArg)
	if err != nil {
		return 0, 0, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}
