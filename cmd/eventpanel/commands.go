package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/eventpanel/internal/config"
	"github.com/jask/eventpanel/internal/database/repository"
	"github.com/jask/eventpanel/internal/logging"
	"github.com/jask/eventpanel/internal/service"
	"github.com/jask/eventpanel/internal/testdata"
	"github.com/jask/eventpanel/internal/tui"
)

func newImportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import events from a YAML file into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := e.openDB()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			svc := &service.ImportService{Events: repository.NewEventRepo(db)}
			res, err := svc.ImportYAML(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "imported %d, skipped %d\n", res.Imported, res.Skipped)
			for _, err := range res.Errors {
				fmt.Fprintf(out, "  %v\n", err)
			}
			if len(res.Errors) > 0 {
				return fmt.Errorf("%d record(s) rejected", len(res.Errors))
			}
			return nil
		},
	}
}

func newListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the organizer's events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			organizerID, err := e.organizerID()
			if err != nil {
				return err
			}
			svc, err := e.catalogService()
			if err != nil {
				return err
			}
			view, err := svc.Load(cmd.Context(), organizerID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if view.Empty() {
				fmt.Fprintln(out, tui.EmptyMessage)
				if len(view.Suggestions) > 0 {
					fmt.Fprintf(out, "Did you mean: %s?\n", strings.Join(view.Suggestions, ", "))
				}
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tTITLE\tLIKES\tCAPACITY\tCATEGORIES")
			for _, ev := range view.Events {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
					ev.ID, ev.Date, ev.Title, ev.DisplayLikes(), ev.Capacity, strings.Join(ev.Categories.Keys(), ","))
			}
			return tw.Flush()
		},
	}
}

func newDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete one stored event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := e.openDB()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := repository.NewEventRepo(db).Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("delete %s: %w", args[0], err)
			}
			pruned, err := repository.NewOrganizerRepo(db).Prune(ctx)
			if err != nil {
				return fmt.Errorf("prune organizers: %w", err)
			}
			logging.FromContext(ctx).Info().Str("event", args[0]).Int64("organizers_pruned", pruned).Msg("event deleted")
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func newResetCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored event and organizer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("reset wipes %s; pass --yes to confirm", e.cfg.Database.Path)
			}
			db, err := e.openDB()
			if err != nil {
				return err
			}
			svc := &service.MaintenanceService{DB: db}
			n, err := svc.Reset(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "store cleared, removed %d events\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func newSeedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo events into an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := e.openDB()
			if err != nil {
				return err
			}
			n, err := testdata.Seed(cmd.Context(), testdata.Repos{Events: repository.NewEventRepo(db)})
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "store not empty, nothing seeded")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d events; try --organizer %s\n", n, testdata.DemoOrganizerID)
			return nil
		},
	}
}

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c := e.cfg
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "config file:              %s\n", e.configPath)
				fmt.Fprintf(out, "database.path:            %s\n", c.Database.Path)
				fmt.Fprintf(out, "catalog.organizer_id:     %s\n", c.Catalog.OrganizerID)
				fmt.Fprintf(out, "catalog.default_category: %s\n", c.Catalog.DefaultCategory)
				fmt.Fprintf(out, "catalog.file:             %s\n", c.Catalog.File)
				fmt.Fprintf(out, "ui.columns:               %d\n", c.UI.Columns)
				fmt.Fprintf(out, "ui.alt_screen:            %t\n", c.UI.AltScreen)
				fmt.Fprintf(out, "log.level:                %s\n", c.Log.Level)
				fmt.Fprintf(out, "log.output:               %s\n", c.Log.Output)
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the effective configuration to the config file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := config.SaveTo(e.cfg, e.configPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", e.configPath)
				return nil
			},
		},
	)
	return cmd
}
