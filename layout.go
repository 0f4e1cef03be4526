package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"sudoku/controller"
	"sudoku/view"
)

var flagPress []string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the draw calls of one frame",
	Long: `Replays pointer presses against the board and prints the primitives the
renderer emits for the resulting frame, in paint order.

Examples:
  sudoku layout
  sudoku layout --press 100,150
  sudoku layout --press 100,150 --press 500,500`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringArrayVar(&flagPress, "press", nil, "Pointer press at x,y in board space (repeatable)")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	kindStyle   = lipgloss.NewStyle().Width(7)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func runLayout(cmd *cobra.Command, args []string) error {
	_, c, v, _, err := setup()
	if err != nil {
		return err
	}

	s := &v.Settings
	for _, p := range flagPress {
		var x, y float64
		if _, err := fmt.Sscanf(p, "%g,%g", &x, &y); err != nil {
			return fmt.Errorf("invalid --press %q, expected x,y: %w", p, err)
		}
		c.Event(s.Position, s.Size(), controller.PointerMove(x, y))
		c.Event(s.Position, s.Size(), controller.PrimaryPress())
	}

	var rec view.Recorder
	v.Draw(c, &rec)

	out := cmd.OutOrStdout()
	selection := "none"
	if sel, ok := c.Selected(); ok {
		selection = fmt.Sprintf("%v section %d", sel, sel.Section())
	}
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("board %v  selected %s  %d primitives", s.Bounds(), selection, len(rec.Primitives))))

	for i, p := range rec.Primitives {
		fmt.Fprintf(out, "%s %s %s %s\n",
			dimStyle.Render(fmt.Sprintf("%3d", i)),
			swatch(p.Color),
			kindStyle.Render(p.Kind.String()),
			strings.TrimPrefix(p.String(), p.Kind.String()+" "),
		)
	}
	return nil
}

func swatch(c color.NRGBA) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
