package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Veraticus/sideline/internal/cli"
	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/spf13/cobra"
)

func transfersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "Show the transfer flags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			state := newBoard(cfg, slog.Default()).Load(cmd.Context())
			out := cmd.OutOrStdout()
			if msg := state.Message(); msg != "" {
				fmt.Fprintln(out, cli.FormatWarning(msg))
			}
			fmt.Fprintln(out, cli.RenderToggleGrid(state.Vector))
			return nil
		},
	}

	cmd.AddCommand(transfersToggleCmd())
	return cmd
}

func transfersToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <index>",
		Short:   "Flip one transfer flag (0-8) and save it",
		Example: "  sideline transfers toggle 4",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil || index < 0 || index >= model.ToggleSlots {
				return common.NewUserError(fmt.Sprintf("Index must be 0-%d, got %q", model.ToggleSlots-1, args[0]), err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx := interrupts.HandleInterrupts(cmd.Context(), "The previous record is left in place.")

			board := newBoard(cfg, slog.Default())
			if state := board.Load(ctx); state.Err != nil {
				common.LogError(state.Err, "starting from defaults", common.Fields{"path": cfg.DataDir})
			}

			_, task, err := board.Toggle(ctx, index)
			if err != nil {
				return err
			}

			result := task.Wait(ctx)
			board.Wait()

			out := cmd.OutOrStdout()
			if !result.IsOk() {
				if interrupts.WasInterrupted() {
					return nil
				}
				return result.Err()
			}

			fmt.Fprintln(out, cli.RenderToggleGrid(result.Value()))
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Slot %d saved", index)))
			return nil
		},
	}
}
