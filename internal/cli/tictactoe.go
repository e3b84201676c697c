package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/puzzlebox/internal/api/request"
	"github.com/mcoot/puzzlebox/internal/api/response"
)

func newTicTacToeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tictactoe",
		Aliases: []string{"ttt"},
		Short:   "Tic-tac-toe commands",
	}

	cmd.AddCommand(newTicTacToeNewCmd())
	cmd.AddCommand(newTicTacToeGetCmd())
	cmd.AddCommand(newTicTacToePlayCmd())
	cmd.AddCommand(newTicTacToeJumpCmd())

	return cmd
}

func newTicTacToeNewCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.TicTacToe
			if err := client.Post(cmd.Context(), "/api/v1/tictactoe", request.CreateTicTacToeRequest{Width: width}, &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 3, "Board width")
	return cmd
}

func newTicTacToeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.TicTacToe
			if err := client.Get(cmd.Context(), "/api/v1/tictactoe/"+args[0], &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}
}

func newTicTacToePlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <id> <square>",
		Short: "Place the next mark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			square, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return postTicTacToe(cmd, args[0], "moves", request.CellRequest{Index: &square})
		},
	}
}

func newTicTacToeJumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jump <id> <step>",
		Short: "View an earlier or later step of the game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return postTicTacToe(cmd, args[0], "jump", request.JumpRequest{Step: &step})
		},
	}
}

func postTicTacToe(cmd *cobra.Command, id, action string, body any) error {
	var result response.TicTacToe
	if err := client.Post(cmd.Context(), fmt.Sprintf("/api/v1/tictactoe/%s/%s", id, action), body, &result); err != nil {
		return err
	}
	if !result.Applied {
		out.Notice("Nothing changed")
	}
	out.Print(result)
	return nil
}
