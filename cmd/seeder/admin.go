package main

import (
	"context"
	"fmt"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/drivers/database"
	"healthlinker-service/internal/app/drivers/logger"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/app/services/core/users"
	"healthlinker-service/internal/pkg/utils"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type seedAdminOptions struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=72"`
	Name     string `validate:"required"`
}

func adminCmd() *cobra.Command {
	opts := seedAdminOptions{}

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create an admin account for doctor review",
		RunE: func(cmd *cobra.Command, args []string) error {
			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			log := logger.NewLogrusLogger(driverConfig, internalConfig)

			mongoDB := database.NewMongoDB(driverConfig)
			defer mongoDB.Disconnect(context.Background())

			seeder := &adminSeeder{
				log:   log,
				users: users.NewUserMongoRepository(mongoDB, driverConfig.MongoDB.DbName),
			}
			return seeder.seed(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "Admin account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "Admin account password")
	cmd.Flags().StringVar(&opts.Name, "name", "Administrator", "Admin display name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

type adminSeeder struct {
	log   *logrus.Logger
	users contracts.UserRepository
}

func (s *adminSeeder) seed(ctx context.Context, opts seedAdminOptions) error {
	opts.Email = strings.ToLower(strings.TrimSpace(opts.Email))
	opts.Name = strings.TrimSpace(opts.Name)
	if err := utils.ValidateStruct(opts); err != nil {
		return fmt.Errorf("invalid admin account: %w", err)
	}

	entry := s.log.WithField("email", opts.Email)
	existing, err := s.users.FindByEmail(ctx, opts.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Role == models.RoleAdmin {
			entry.Info("admin already exists, skipping")
			return nil
		}
		return fmt.Errorf("email %s already belongs to a %s account", opts.Email, existing.Role)
	}

	hashed, err := utils.HashPassword(opts.Password)
	if err != nil {
		return err
	}
	admin := &models.User{
		Name:     opts.Name,
		Email:    opts.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	admin.SetCreatedAtUpdatedAt()
	userID, err := s.users.CreateUser(ctx, admin)
	if err != nil {
		return err
	}

	entry.WithField("user_id", userID).Info("admin created")
	return nil
}
