package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/CTAG07/texforge/pkg/config"
)

var (
	dbPath       string
	exportOutput string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage resolved configurations",
}

var configExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the resolved configuration as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver(newLogger())
		if err != nil {
			return err
		}
		if exportOutput != "" {
			return resolver.ExportFile(exportOutput)
		}
		out, err := resolver.ExportJSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save the resolved configuration as a named snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		resolver, err := newResolver(logger)
		if err != nil {
			return err
		}
		store, db, err := openStore(logger)
		if err != nil {
			return err
		}
		defer closeStore(store, db)

		return store.Save(cmd.Context(), args[0], resolver.Snapshot())
	},
}

var configLoadCmd = &cobra.Command{
	Use:   "load [name]",
	Short: "Print a stored snapshot as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		store, db, err := openStore(logger)
		if err != nil {
			return err
		}
		defer closeStore(store, db)

		data, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshot names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		store, db, err := openStore(logger)
		if err != nil {
			return err
		}
		defer closeStore(store, db)

		names, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		store, db, err := openStore(logger)
		if err != nil {
			return err
		}
		defer closeStore(store, db)

		return store.Delete(cmd.Context(), args[0])
	},
}

func openStore(logger *slog.Logger) (*config.Store, *sql.DB, error) {
	db, err := initDB(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = config.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to setup schema: %w", err)
	}
	store, err := config.NewStore(db, logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return store, db, nil
}

func closeStore(store *config.Store, db *sql.DB) {
	store.Close()
	_ = db.Close()
}

func init() {
	configCmd.PersistentFlags().StringVar(&dbPath, "db", "./texforge.db", "Path to the snapshot database")
	configExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (stdout when omitted)")
	configCmd.AddCommand(configExportCmd, configSaveCmd, configLoadCmd, configListCmd, configDeleteCmd)
	rootCmd.AddCommand(configCmd)
}
