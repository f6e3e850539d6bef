package main

import (
	"context"
	"fmt"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/drivers/database"
	"healthlinker-service/internal/app/drivers/logger"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/app/services/core/doctors"
	"healthlinker-service/internal/app/services/core/slot"
	"healthlinker-service/internal/app/services/core/users"
	"healthlinker-service/internal/app/services/shared/locker"
	redisRepository "healthlinker-service/internal/app/services/shared/redis"
	"healthlinker-service/internal/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var seedSpecialties = []string{"Cardiology", "Dermatology", "General Practice", "Neurology", "Pediatrics"}

var seedWorkingHours = []models.WorkingHour{
	{Day: "Monday", StartTime: "09:00", EndTime: "12:00"},
	{Day: "Tuesday", StartTime: "09:00", EndTime: "12:00"},
	{Day: "Wednesday", StartTime: "13:00", EndTime: "17:00"},
	{Day: "Thursday", StartTime: "09:00", EndTime: "12:00"},
	{Day: "Friday", StartTime: "09:00", EndTime: "11:00"},
}

type seedDoctorsOptions struct {
	count    int
	password string
	slotDays int
}

func doctorsCmd() *cobra.Command {
	opts := seedDoctorsOptions{}

	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Seed approved doctor accounts with profiles and upcoming slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			log := logger.NewLogrusLogger(driverConfig, internalConfig)

			location, err := time.LoadLocation(internalConfig.App.Timezone)
			if err != nil {
				return err
			}
			time.Local = location

			mongoDB := database.NewMongoDB(driverConfig)
			defer mongoDB.Disconnect(context.Background())

			redisClient := database.NewRedisClient(driverConfig)
			defer redisClient.Close()
			lockerService := locker.NewLockService(redisRepository.NewRedisRepository(redisClient), zap.NewNop())

			dbName := driverConfig.MongoDB.DbName
			doctorRepo := doctors.NewDoctorMongoRepository(mongoDB, dbName)
			seeder := &doctorSeeder{
				log:     log,
				users:   users.NewUserMongoRepository(mongoDB, dbName),
				doctors: doctorRepo,
				slots:   slot.NewSlotUsecase(doctorRepo, slot.NewSlotMongoRepository(mongoDB, dbName), lockerService, internalConfig, zap.NewNop()),
			}
			return seeder.seed(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.count, "count", 5, "Number of doctors to seed")
	cmd.Flags().StringVar(&opts.password, "password", "doctor123", "Password for every seeded doctor account")
	cmd.Flags().IntVar(&opts.slotDays, "slot-days", 14, "Days of slots to generate from today, 0 to skip")
	return cmd
}

type slotTopUpper interface {
	TopUpSlots(ctx context.Context, doctor *models.Doctor, from time.Time, days int) (int, error)
}

type doctorSeeder struct {
	log     *logrus.Logger
	users   contracts.UserRepository
	doctors contracts.DoctorRepository
	slots   slotTopUpper
}

// seed is safe to re-run: accounts with a profile are skipped and doctor
// accounts left without one by an earlier failed run get their profile.
func (s *doctorSeeder) seed(ctx context.Context, opts seedDoctorsOptions) error {
	hashed, err := utils.HashPassword(opts.password)
	if err != nil {
		return err
	}

	today := utils.StartOfDay(time.Now())
	for i := 1; i <= opts.count; i++ {
		email := fmt.Sprintf("doctor%03d@seed.healthlinker.local", i)
		entry := s.log.WithField("email", email)

		user, err := s.users.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if user != nil {
			if user.Role != models.RoleDoctor {
				entry.WithField("role", user.Role).Warn("email taken by a non-doctor account, skipping")
				continue
			}
			profile, err := s.doctors.FindByUserID(ctx, user.ID.Hex())
			if err != nil {
				return err
			}
			if profile != nil {
				entry.Info("doctor already seeded, skipping")
				continue
			}
			entry.Info("doctor account has no profile, completing it")
		} else {
			user = &models.User{
				Name:     fmt.Sprintf("Dr. Seed %03d", i),
				Email:    email,
				Password: hashed,
				Role:     models.RoleDoctor,
			}
			user.SetCreatedAtUpdatedAt()
			userID, err := s.users.CreateUser(ctx, user)
			if err != nil {
				return err
			}
			if user.ID, err = primitive.ObjectIDFromHex(userID); err != nil {
				return err
			}
		}

		doctor := &models.Doctor{
			UserID:       user.ID,
			Name:         user.Name,
			Specialty:    seedSpecialties[(i-1)%len(seedSpecialties)],
			Fees:         float64(50 + 10*((i-1)%5)),
			SlotDuration: 30,
			WorkingHours: seedWorkingHours,
			Status:       models.DoctorStatusApproved,
		}
		doctor.SetCreatedAtUpdatedAt()
		doctorID, err := s.doctors.CreateDoctor(ctx, doctor)
		if err != nil {
			return err
		}
		if doctor.ID, err = primitive.ObjectIDFromHex(doctorID); err != nil {
			return err
		}

		created := 0
		if opts.slotDays > 0 {
			if created, err = s.slots.TopUpSlots(ctx, doctor, today, opts.slotDays); err != nil {
				return err
			}
		}

		entry.WithFields(logrus.Fields{
			"doctor_id": doctorID,
			"specialty": doctor.Specialty,
			"slots":     created,
		}).Info("doctor seeded")
	}
	return nil
}
