package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/catalogpatch/database/seeders"
)

// catalogpatch seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo categories and inventory sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "Running seeders…")
		return seeders.RunAll(cmd.Context(), a.db, cmd.OutOrStdout())
	},
}
