package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/eggstore/config"
	"github.com/shashiranjanraj/eggstore/database/seeders"
	"github.com/shashiranjanraj/eggstore/internal/server"
)

// eggstore seed — run the catalogue seeders without starting the server.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run the catalogue seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db := server.ConnectStore(ctx)
		if db == nil {
			return fmt.Errorf("seed: no document store to seed (set DATABASE_URL)")
		}
		defer db.Close(context.Background()) //nolint:errcheck

		products, _ := server.BuildRepositories(db)
		if err := seeders.RunAll(ctx, seeders.Deps{Products: products}); err != nil {
			return err
		}

		fmt.Println("Seeding complete.")
		return nil
	},
}
