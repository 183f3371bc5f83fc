package main

import (
	"fmt"
	"os"
	"time"

	"dbadmin/internal/ops"
	"dbadmin/pkg/config"
	"dbadmin/pkg/database"
	"dbadmin/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Prompt substring identifying the tasks to rewind. Edit before running.
const promptSubstring = "weekly report"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg)
	log := logger.GetLogger()

	err = database.Run(cfg, func(db *gorm.DB) error {
		affected, err := ops.MarkTasksOverdue(db, promptSubstring, time.Now().Add(-time.Minute))
		if err != nil {
			return err
		}

		fmt.Printf("Marked %d task(s) matching %q as overdue\n", affected, promptSubstring)
		return nil
	})
	if err != nil {
		log.Error("Failed to mark tasks overdue", zap.Error(err))
		os.Exit(1)
	}
}
