package main

import (
	"context"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/drivers/database"
	"healthlinker-service/internal/app/drivers/logger"
	"time"

	"github.com/spf13/cobra"
)

func indexesCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "indexes",
		Short: "Create the MongoDB indexes the service relies on",
		RunE: func(cmd *cobra.Command, args []string) error {
			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			log := logger.NewLogrusLogger(driverConfig, internalConfig)

			mongoDB := database.NewMongoDB(driverConfig)
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			defer mongoDB.Disconnect(context.Background())

			if err := database.EnsureIndexes(ctx, mongoDB, driverConfig.MongoDB.DbName); err != nil {
				log.WithError(err).Error("failed to create indexes")
				return err
			}
			log.WithField("database", driverConfig.MongoDB.DbName).Info("indexes are in place")
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Time allowed for index creation")
	return cmd
}
