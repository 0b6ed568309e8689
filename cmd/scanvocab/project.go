package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/scanvocab/scanvocab/internal/cli"
	"github.com/scanvocab/scanvocab/internal/session"
	"github.com/scanvocab/scanvocab/internal/transfer"
)

func newProjectCommand() *cobra.Command {
	projectCommands := &cobra.Command{
		Use:   "projects",
		Short: "Manage vocabulary decks",
	}
	projectCommands.AddCommand(
		newProjectListCommand(),
		newProjectCreateCommand(),
		newProjectShowCommand(),
		newProjectDeleteCommand(),
		newProjectExportCommand(),
		newProjectImportCommand(),
	)
	return projectCommands
}

func newProjectListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List decks, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repository, _, err := resolveRepository(ctx, cfg, newRegistry(ctx, cfg))
			if err != nil {
				return err
			}

			projects, err := repository.GetProjects(ctx, cfg.Account.UserID)
			if err != nil {
				return fmt.Errorf("repository.GetProjects() > %w", err)
			}
			if len(projects) == 0 {
				fmt.Println("No decks yet. Run 'scanvocab scan <image file>' to create one.")
				return nil
			}

			for _, project := range projects {
				synced := ""
				if project.IsSynced {
					synced = " (synced)"
				}
				fmt.Printf("%s  %s  %s%s\n", project.ID, project.CreatedAt.Format("2006-01-02"), project.Title, synced)
			}
			return nil
		},
	}
}

func newProjectCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <title>",
		Short: "Create an empty deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repository, _, err := resolveRepository(ctx, cfg, newRegistry(ctx, cfg))
			if err != nil {
				return err
			}

			project, err := repository.CreateProject(ctx, cfg.Account.UserID, args[0])
			if err != nil {
				return fmt.Errorf("repository.CreateProject() > %w", err)
			}
			fmt.Printf("Created deck %q (%s).\n", project.Title, project.ID)
			return nil
		},
	}
}

func newProjectShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project id>",
		Short: "Show a deck and its words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repository, _, err := resolveRepository(ctx, cfg, newRegistry(ctx, cfg))
			if err != nil {
				return err
			}

			project, err := repository.GetProject(ctx, args[0])
			if err != nil {
				return fmt.Errorf("repository.GetProject() > %w", err)
			}
			if project == nil {
				return fmt.Errorf("deck %s is not found", args[0])
			}
			words, err := repository.GetWords(ctx, project.ID)
			if err != nil {
				return fmt.Errorf("repository.GetWords() > %w", err)
			}

			fmt.Printf("%s (%s, %d words)\n\n", project.Title, project.ID, len(words))
			for i, word := range words {
				favorite := ""
				if word.IsFavorite {
					favorite = " (favorite)"
				}
				fmt.Printf("%3d. [%s] %s - %s%s\n", i+1, word.Status, word.English, word.Japanese, favorite)
			}
			return nil
		},
	}
}

func newProjectDeleteCommand() *cobra.Command {
	var force bool

	command := &cobra.Command{
		Use:   "delete <project id>",
		Short: "Delete a deck and all of its words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repository, _, err := resolveRepository(ctx, cfg, newRegistry(ctx, cfg))
			if err != nil {
				return err
			}

			project, err := repository.GetProject(ctx, args[0])
			if err != nil {
				return fmt.Errorf("repository.GetProject() > %w", err)
			}
			if project == nil {
				return fmt.Errorf("deck %s is not found", args[0])
			}

			if !force {
				confirmed, err := cli.NewInteractiveCLI().Confirm(fmt.Sprintf("Delete deck %q and all of its words?", project.Title))
				if err != nil {
					return fmt.Errorf("interactive.Confirm() > %w", err)
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := repository.DeleteProject(ctx, project.ID); err != nil {
				return fmt.Errorf("repository.DeleteProject() > %w", err)
			}
			// Saved checkpoints for the deck would fail validation anyway;
			// drop them now instead of leaving stale files behind.
			store := session.NewStore(cfg.Session.Directory)
			for _, favoritesOnly := range []bool{false, true} {
				_ = store.Delete(session.Key{ProjectID: project.ID, FavoritesOnly: favoritesOnly})
			}

			fmt.Printf("Deleted deck %q.\n", project.Title)
			return nil
		},
	}
	command.Flags().BoolVar(&force, "force", false, "Delete without confirmation")
	return command
}

func newProjectExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <project id> <output file>",
		Short: "Export a deck to .xlsx or .md",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			repository, _, err := resolveRepository(ctx, cfg, newRegistry(ctx, cfg))
			if err != nil {
				return err
			}

			project, err := repository.GetProject(ctx, args[0])
			if err != nil {
				return fmt.Errorf("repository.GetProject() > %w", err)
			}
			if project == nil {
				return fmt.Errorf("deck %s is not found", args[0])
			}
			words, err := repository.GetWords(ctx, project.ID)
			if err != nil {
				return fmt.Errorf("repository.GetWords() > %w", err)
			}

			outputPath := args[1]
			switch strings.ToLower(filepath.Ext(outputPath)) {
			case ".xlsx":
				if err := transfer.ExportXLSX(outputPath, words); err != nil {
					return fmt.Errorf("transfer.ExportXLSX() > %w", err)
				}
			case ".md":
				if err := transfer.ExportMarkdown(outputPath, cfg.Templates.DeckExportTemplate, *project, words, time.Now()); err != nil {
					return fmt.Errorf("transfer.ExportMarkdown() > %w", err)
				}
			default:
				return fmt.Errorf("unsupported export format %q, use .xlsx or .md", filepath.Ext(outputPath))
			}

			fmt.Printf("Exported %d words to %s\n", len(words), outputPath)
			return nil
		},
	}
}

func newProjectImportCommand() *cobra.Command {
	var title string

	command := &cobra.Command{
		Use:   "import <xlsx file>",
		Short: "Import a workbook as a new deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			inputs, result, err := transfer.ImportXLSX(args[0])
			if err != nil {
				return fmt.Errorf("transfer.ImportXLSX() > %w", err)
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no importable rows in %s", args[0])
			}

			if title == "" {
				title = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			repository, _, err := resolveRepository(ctx, cfg, newRegistry(ctx, cfg))
			if err != nil {
				return err
			}
			project, err := repository.CreateProject(ctx, cfg.Account.UserID, title)
			if err != nil {
				return fmt.Errorf("repository.CreateProject() > %w", err)
			}
			created, err := repository.CreateWords(ctx, project.ID, inputs)
			if err != nil {
				return fmt.Errorf("repository.CreateWords() > %w", err)
			}

			fmt.Printf("Created deck %q (%s).\n\n", project.Title, project.ID)
			fmt.Println("Import Summary:")
			fmt.Printf("  Rows processed: %d\n", result.TotalProcessed)
			fmt.Printf("  Imported:       %d\n", len(created))
			fmt.Printf("  Skipped:        %d\n", result.Skipped)
			for _, message := range result.Errors {
				fmt.Printf("  - %s\n", message)
			}
			return nil
		},
	}
	command.Flags().StringVar(&title, "title", "", "Deck title (defaults to the file name)")
	return command
}
