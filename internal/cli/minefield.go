package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/puzzlebox/internal/api/request"
	"github.com/mcoot/puzzlebox/internal/api/response"
)

func newMinefieldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "minefield",
		Aliases: []string{"mf"},
		Short:   "Minefield commands",
	}

	cmd.AddCommand(newMinefieldPresetsCmd())
	cmd.AddCommand(newMinefieldNewCmd())
	cmd.AddCommand(newMinefieldGetCmd())
	cmd.AddCommand(newMinefieldActionCmd("reveal", "Reveal a cell", "reveal"))
	cmd.AddCommand(newMinefieldActionCmd("flag", "Toggle a flag on a cell", "flag"))

	return cmd
}

func newMinefieldPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List board presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.Preset
			if err := client.Get(cmd.Context(), "/api/v1/minefields/presets", &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}
}

func newMinefieldNewCmd() *cobra.Command {
	var req request.CreateMinefieldRequest

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new minefield",
		Long:  "Start a new minefield from a preset, or from --width, --height and --mines.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Minefield
			if err := client.Post(cmd.Context(), "/api/v1/minefields", req, &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Preset, "preset", "", "Preset name (default, easy, medium, hard)")
	cmd.Flags().IntVar(&req.Width, "width", 0, "Board width")
	cmd.Flags().IntVar(&req.Height, "height", 0, "Board height")
	cmd.Flags().IntVar(&req.Mines, "mines", 0, "Number of mines")
	cmd.MarkFlagsMutuallyExclusive("preset", "width")
	cmd.MarkFlagsRequiredTogether("width", "height")

	return cmd
}

func newMinefieldGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a minefield",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := getMinefield(cmd, args[0])
			if err != nil {
				return err
			}
			out.Print(field)
			return nil
		},
	}
}

func newMinefieldActionCmd(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id> <cell>",
		Short: short,
		Long:  short + ". A cell is a board index or row,col.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			index, err := resolveCell(cmd, id, args[1])
			if err != nil {
				return err
			}

			var result response.Minefield
			path := fmt.Sprintf("/api/v1/minefields/%s/%s", id, action)
			if err := client.Post(cmd.Context(), path, request.CellRequest{Index: &index}, &result); err != nil {
				return err
			}
			if !result.Applied {
				out.Notice("Nothing changed")
			}
			out.Print(result)
			return nil
		},
	}
}

func getMinefield(cmd *cobra.Command, id string) (response.Minefield, error) {
	var field response.Minefield
	err := client.Get(cmd.Context(), "/api/v1/minefields/"+id, &field)
	return field, err
}

// resolveCell turns "row,col" into an index, fetching the board for its width
func resolveCell(cmd *cobra.Command, id, arg string) (int, error) {
	rowStr, colStr, ok := strings.Cut(arg, ",")
	if !ok {
		return parseIndex(arg)
	}
	row, err := parseIndex(rowStr)
	if err != nil {
		return 0, err
	}
	col, err := parseIndex(colStr)
	if err != nil {
		return 0, err
	}

	field, err := getMinefield(cmd, id)
	if err != nil {
		return 0, err
	}
	if row >= field.Height || col >= field.Width {
		return 0, fmt.Errorf("cell %s is outside the %dx%d board", arg, field.Width, field.Height)
	}
	return row*field.Width + col, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid cell %q", s)
	}
	return n, nil
}
