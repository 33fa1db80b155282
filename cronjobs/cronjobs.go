package cronjobs

import (
	"context"
	"log"
	"os"

	"github.com/robfig/cron/v3"

	"go-reviewbird/reviews"
)

// InitCronJobs schedules the periodic review reload. A failed reload is
// logged and leaves the previous collection in place.
func InitCronJobs(store *reviews.Store) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Review reload: run every 30 minutes
	_, err := c.AddFunc("*/30 * * * *", func() {
		log.Println("\nCronJob: Review Reload Running")
		source := os.Getenv("REVIEWS_TSV_URL")
		if source == "" {
			log.Println("No REVIEWS_TSV_URL configured, skipping reload")
			return
		}

		count, err := store.Load(context.Background(), source)
		if err != nil {
			log.Printf("Error reloading reviews from %s: %v", source, err)
			return
		}
		log.Printf("Reloaded %d reviews from %s", count, source)
	})
	if err != nil {
		log.Println("Error scheduling Review Reload:", err)
	}

	c.Start()
}
