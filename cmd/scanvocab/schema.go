package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/scanvocab/scanvocab/schemas"
)

func newSchemaCommand() *cobra.Command {
	schemaCommands := &cobra.Command{
		Use:   "schema",
		Short: "Print the reference database schemas",
	}
	schemaCommands.AddCommand(newSchemaPostgresCommand())
	return schemaCommands
}

func newSchemaPostgresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "postgres",
		Short: "Print the cloud service DDL for provisioning",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := schemas.Postgres.ReadDir("postgres")
			if err != nil {
				return fmt.Errorf("schemas.Postgres.ReadDir() > %w", err)
			}
			for _, entry := range entries {
				content, err := schemas.Postgres.ReadFile(path.Join("postgres", entry.Name()))
				if err != nil {
					return fmt.Errorf("schemas.Postgres.ReadFile(%s) > %w", entry.Name(), err)
				}
				fmt.Printf("-- %s\n%s\n", entry.Name(), content)
			}
			return nil
		},
	}
}
