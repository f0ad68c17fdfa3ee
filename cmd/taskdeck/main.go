package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/taskdeck-dev/taskdeck/db"
	"github.com/taskdeck-dev/taskdeck/internal/auth"
	"github.com/taskdeck-dev/taskdeck/internal/router"
	"gorm.io/gorm"
)

func openDatabase() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	return db.Connect(dsn)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the taskdeck API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDatabase()

			if err != nil {
				return err
			}

			if err := db.Migrate(conn); err != nil {
				return err
			}

			if err := auth.InitJWTSecret(); err != nil {
				return err
			}

			r := router.NewRouter(conn)

			port := os.Getenv("PORT")

			if port == "" {
				port = "3000"
				log.Println("PORT not set, defaulting to 3000")
			}

			return r.Run(":" + port)
		},
	}
}

func dbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDatabase()

			if err != nil {
				return err
			}

			if err := db.Migrate(conn); err != nil {
				return err
			}

			log.Println("Database created")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "drop",
		Short: "Drop the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDatabase()

			if err != nil {
				return err
			}

			if err := db.Drop(conn); err != nil {
				return err
			}

			log.Println("Database dropped")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Seed the database with default users",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDatabase()

			if err != nil {
				return err
			}

			if err := db.Seed(conn); err != nil {
				return err
			}

			log.Println("Database seeded")
			return nil
		},
	})

	return cmd
}

func main() {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Task card tracking backend",
	}

	root.AddCommand(serveCmd(), dbCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
