package cli

import (
	"github.com/spf13/cobra"

	"github.com/studiva/studiva-backend/config"
	"github.com/studiva/studiva-backend/internal/database"
	"github.com/studiva/studiva-backend/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			logger.Setup(cfg)

			db, err := database.NewDatabase(cfg)
			if err != nil {
				return err
			}
			return AutoMigrateDB(db)
		},
	}
}
