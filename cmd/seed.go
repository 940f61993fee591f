package cmd

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jobtrack/src/core/job"
	"jobtrack/src/log"
	"jobtrack/src/storage/postgres/jobctrl"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert mock jobs for one owner",
	Long:  `The seed command fills the database with mock applications for the configured owner, spread across the trailing months so the stats and chart endpoints have data.`,
	Run:   RunSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

var seedPositions = []string{
	"Backend Engineer",
	"Frontend Developer",
	"Full Stack Developer",
	"Data Engineer",
	"DevOps Engineer",
	"Software Engineer",
}

var seedCompanies = []string{
	"Acme",
	"Globex",
	"Initech",
	"Umbrella",
	"Stark Industries",
	"Wayne Enterprises",
}

var seedLocations = []string{
	"Remote",
	"New York",
	"Berlin",
	"Singapore",
	"London",
}

var seedStatuses = []job.Status{job.StatusPending, job.StatusInterview, job.StatusDeclined}

var seedModes = []job.Mode{job.ModeFullTime, job.ModePartTime, job.ModeInternship}

func RunSeed(cmd *cobra.Command, args []string) {
	db, err := openDatabase()
	if err != nil {
		log.Error(err, "Failed to connect to database")
		return
	}

	repo := jobctrl.NewRepository(db)
	ownerID := viper.GetString("seed.owner")
	ctx := context.Background()

	const total = 75
	now := time.Now()

	for i := 0; i < total; i++ {
		createdAt := now.AddDate(0, -rand.Intn(12), -rand.Intn(28))
		j := &job.Job{
			ID:        uuid.NewString(),
			OwnerID:   ownerID,
			Position:  seedPositions[rand.Intn(len(seedPositions))],
			Company:   seedCompanies[rand.Intn(len(seedCompanies))],
			Location:  seedLocations[rand.Intn(len(seedLocations))],
			Status:    seedStatuses[rand.Intn(len(seedStatuses))],
			Mode:      seedModes[rand.Intn(len(seedModes))],
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}

		if err := repo.Create(ctx, j); err != nil {
			log.Error(err, "Failed to seed job", "position", j.Position, "company", j.Company)
			return
		}
	}

	log.Info("Seed complete", "owner", ownerID, "jobs", total)
}
