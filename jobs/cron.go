package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/DC-NERI/innWise-sub001/models"
)

// NotificationPruner deletes read notifications past their retention window.
type NotificationPruner interface {
	PruneRead(maxAge time.Duration) (int64, error)
}

var notificationPruner NotificationPruner

func SetNotificationPruner(pruner NotificationPruner) {
	notificationPruner = pruner
}

// InspectionReporter lists rooms that have sat in inspection too long.
type InspectionReporter interface {
	StaleInspections(maxAge time.Duration) ([]models.Room, error)
}

var inspectionReporter InspectionReporter

func SetInspectionReporter(reporter InspectionReporter) {
	inspectionReporter = reporter
}

const (
	notificationRetention = 30 * 24 * time.Hour
	inspectionMaxAge      = 12 * time.Hour
)

// InitCronJobs registers the nightly maintenance jobs and starts the cron.
func InitCronJobs(c *cron.Cron) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		if notificationPruner == nil {
			log.Println("notification pruner is not configured, skipping")
			return
		}
		pruned, err := notificationPruner.PruneRead(notificationRetention)
		if err != nil {
			log.Printf("failed to prune notifications: %v", err)
			return
		}
		log.Printf("notification prune finished, removed %d rows", pruned)
	})
	if err != nil {
		return err
	}

	_, err = c.AddFunc("30 0 * * *", func() {
		if inspectionReporter == nil {
			return
		}
		rooms, err := inspectionReporter.StaleInspections(inspectionMaxAge)
		if err != nil {
			log.Printf("failed to list stale inspections: %v", err)
			return
		}
		for _, room := range rooms {
			log.Printf("room %s (branch %d) has been in inspection for over %s", room.RoomCode, room.BranchID, inspectionMaxAge)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
