package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/puzzlebox/internal/api/request"
	"github.com/mcoot/puzzlebox/internal/api/response"
)

func newCryptogramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cryptogram",
		Aliases: []string{"cg"},
		Short:   "Cryptogram commands",
	}

	cmd.AddCommand(newCryptogramListCmd())
	cmd.AddCommand(newCryptogramSelectCmd())
	cmd.AddCommand(newCryptogramGetCmd())
	cmd.AddCommand(newCryptogramEnterCmd())
	cmd.AddCommand(newCryptogramHintCmd())
	cmd.AddCommand(newCryptogramResetCmd())

	return cmd
}

// puzzleIndex returns the index argument, or the player's current puzzle when omitted
func puzzleIndex(cmd *cobra.Command, args []string) (int, error) {
	if len(args) > 0 {
		index, err := strconv.Atoi(args[0])
		if err != nil || index < 0 {
			return 0, fmt.Errorf("invalid puzzle index %q", args[0])
		}
		return index, nil
	}
	var catalog response.Catalog
	if err := client.Get(cmd.Context(), "/api/v1/cryptograms", &catalog); err != nil {
		return 0, err
	}
	return catalog.Current, nil
}

func newCryptogramListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show how many cryptograms there are and which is current",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Catalog
			if err := client.Get(cmd.Context(), "/api/v1/cryptograms", &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}
}

func newCryptogramSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <index>",
		Short: "Make a cryptogram current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := puzzleIndex(cmd, args)
			if err != nil {
				return err
			}
			var result response.Puzzle
			if err := client.Put(cmd.Context(), "/api/v1/cryptograms/current", request.SelectPuzzleRequest{Index: &index}, &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}
}

func newCryptogramGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [index]",
		Short: "Show a cryptogram (defaults to the current one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := puzzleIndex(cmd, args)
			if err != nil {
				return err
			}
			var result response.Puzzle
			if err := client.Get(cmd.Context(), fmt.Sprintf("/api/v1/cryptograms/%d", index), &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}
}

func newCryptogramEnterCmd() *cobra.Command {
	var (
		index    int
		position int
	)

	cmd := &cobra.Command{
		Use:   "enter <cipher-letter> <guess>",
		Short: "Guess the plain letter behind a cipher letter",
		Long:  "Guess the plain letter behind a cipher letter. A guess of - clears it.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("index") {
				current, err := puzzleIndex(cmd, nil)
				if err != nil {
					return err
				}
				index = current
			}

			guess := args[1]
			if guess == "-" {
				guess = ""
			}
			req := request.EnterLetterRequest{Substituted: args[0], Letter: guess, Position: position}

			var result response.Puzzle
			if err := client.Post(cmd.Context(), fmt.Sprintf("/api/v1/cryptograms/%d/letters", index), req, &result); err != nil {
				return err
			}
			if !result.Applied {
				out.Notice("Nothing changed")
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Puzzle index (defaults to the current one)")
	cmd.Flags().IntVar(&position, "position", 0, "Phrase position being edited, used to pick the next empty cell")

	return cmd
}

func newCryptogramHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint [index]",
		Short: "Reveal one letter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := puzzleIndex(cmd, args)
			if err != nil {
				return err
			}
			var result response.HintResponse
			if err := client.Post(cmd.Context(), fmt.Sprintf("/api/v1/cryptograms/%d/hint", index), nil, &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}
}

func newCryptogramResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [index]",
		Short: "Start a cryptogram again with a new cipher",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := puzzleIndex(cmd, args)
			if err != nil {
				return err
			}
			var result response.Puzzle
			if err := client.Post(cmd.Context(), fmt.Sprintf("/api/v1/cryptograms/%d/reset", index), nil, &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}
}
