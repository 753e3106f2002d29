package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/freshtrackhq/freshtrack/internal/clock"
	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/notify"
	"github.com/freshtrackhq/freshtrack/internal/pantry"
	"github.com/freshtrackhq/freshtrack/internal/reminder"
	"github.com/freshtrackhq/freshtrack/internal/remote"
)

// newSyncController builds the same store-mirror controller the agent runs,
// with notifications disabled: one-shot verbs mutate through the controller
// so classification and rollback semantics match the agent, but the
// long-running agent process owns the actual reminder schedule.
func newSyncController(app *App) *pantry.Controller {
	store := remote.NewClient(app.Config.Remote.BaseURL)
	rec := reminder.NewReconciler(notify.Noop{}, app.Log)
	return pantry.NewController(store, rec, clock.System(), app.Log)
}

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage pantry items",
	}

	cmd.AddCommand(
		newItemListCmd(app),
		newItemAddCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pantry items with freshness status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := newSyncController(app)
			if err := ctrl.Refresh(context.Background()); err != nil {
				return err
			}
			items := ctrl.Items()

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "Pantry is empty.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tQTY\tEXPIRES\tSTATUS")
			for _, it := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					shortID(it.ID), it.Name, it.Quantity, it.ExpiryDate, it.Status)
			}
			return w.Flush()
		},
	}
}

func newItemAddCmd(app *App) *cobra.Command {
	var name, quantity, expires, category, emoji string
	var value float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pantry item",
		RunE: func(cmd *cobra.Command, args []string) error {
			item := domain.PantryItem{
				Name:       name,
				Quantity:   quantity,
				ExpiryDate: expires,
				Category:   category,
				Emoji:      emoji,
			}
			if cmd.Flags().Changed("value") {
				item.Value = &value
			}

			created, err := newSyncController(app).Create(context.Background(), item)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s [%s] (%s)\n",
				created.Name, shortID(created.ID), created.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&quantity, "qty", "", "Quantity, e.g. \"2\" or \"500g\"")
	cmd.Flags().StringVar(&expires, "expires", "", "Expiry date, e.g. 25/12/2026 or \"Dec 25, 2026\"")
	cmd.Flags().StringVar(&category, "category", "", "Category (Dairy, Produce, ...)")
	cmd.Flags().StringVar(&emoji, "emoji", "", "Display emoji")
	cmd.Flags().Float64Var(&value, "value", 0, "Estimated value")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a pantry item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ctrl := newSyncController(app)
			if err := ctrl.Refresh(ctx); err != nil {
				return err
			}

			id, err := resolveItemID(ctrl.Items(), args[0])
			if err != nil {
				return err
			}
			if err := ctrl.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", shortID(id))
			return nil
		},
	}
}

// resolveItemID accepts a full ID or an unambiguous prefix.
func resolveItemID(items []domain.PantryItem, input string) (string, error) {
	var matches []string
	for _, it := range items {
		if it.ID == input {
			return it.ID, nil
		}
		if len(input) > 0 && len(it.ID) >= len(input) && it.ID[:len(input)] == input {
			matches = append(matches, it.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
