package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/colorcompare/internal/render"
	"github.com/mesh-intelligence/colorcompare/internal/session"
	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

const browseHelp = `Commands:
  select A B      compare two datasets (name or index); clears filters
  color NAME      toggle a color-name filter
  pigment NAME    toggle a pigment filter
  clear           drop all filters
  order MODE      first-seen or alphabetical
  options         list filter values for the current pair
  help            show this help
  quit            leave
`

func newBrowseCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "browse [A B]",
		Short: "Explore a comparison interactively",
		Long: "Read one command per line from stdin and reprint the comparison after each change.\n" +
			"Type help for the list of commands.",
		Args: pairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBrowse(cmd, args, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: text, html or json")
	return cmd
}

func (a *app) runBrowse(cmd *cobra.Command, args []string, format string) error {
	nameA, nameB, err := a.pickPair(args)
	if err != nil {
		return err
	}
	order, err := a.order("")
	if err != nil {
		return err
	}
	r, err := a.renderer(format)
	if err != nil {
		return err
	}
	pair, err := a.newPair()
	if err != nil {
		return err
	}
	defer pair.Close()

	b := &browser{
		app:     a,
		session: session.New(pair, a.logger),
		r:       r,
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
	}
	ctx := contextOf(cmd)

	res, err := b.session.Select(ctx, nameA, nameB)
	if err == nil && order != types.OrderFirstSeen {
		res, err = b.session.SetOrder(ctx, string(order))
	}
	if err != nil {
		return err
	}
	if err := b.show(res); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		verb, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		var next session.Result
		switch strings.ToLower(verb) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(b.out, browseHelp)
			continue
		case "options":
			printOptions(b.out, b.last.Options)
			continue
		case "select":
			next, err = b.selectPair(ctx, arg)
		case "color":
			next, err = b.session.ToggleColor(ctx, arg)
		case "pigment":
			next, err = b.session.TogglePigment(ctx, arg)
		case "clear":
			next, err = b.session.ClearFilters(ctx)
		case "order":
			next, err = b.session.SetOrder(ctx, arg)
		default:
			fmt.Fprintf(b.errOut, "unknown command %q (type help)\n", verb)
			continue
		}

		if errors.Is(err, session.ErrSuperseded) {
			continue
		}
		if err != nil {
			fmt.Fprintln(b.errOut, "Error:", err)
			continue
		}
		if err := b.show(next); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return systemErrorf("read input: %w", err)
	}
	return nil
}

// browser drives one interactive session.
type browser struct {
	app     *app
	session *session.Session
	r       render.Renderer
	out     io.Writer
	errOut  io.Writer
	last    session.Result
}

func (b *browser) selectPair(ctx context.Context, arg string) (session.Result, error) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return session.Result{}, types.ErrNotEnoughDatasets
	}
	nameA, nameB, err := b.app.pickPair(fields)
	if err != nil {
		return session.Result{}, err
	}
	return b.session.Select(ctx, nameA, nameB)
}

func (b *browser) show(res session.Result) error {
	b.last = res
	if err := b.r.Render(b.out, res.View); err != nil {
		return systemErrorf("render: %w", err)
	}
	return nil
}
