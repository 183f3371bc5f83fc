package main

import (
	"fmt"
	"os"

	"dbadmin/internal/ops"
	"dbadmin/pkg/config"
	"dbadmin/pkg/database"
	"dbadmin/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Target task. Edit before running.
const taskID = "f4a2c8e1-6b3d-4e9f-a7c5-1d8b2f6e0a93"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg)
	log := logger.GetLogger()

	err = database.Run(cfg, func(db *gorm.DB) error {
		affected, err := ops.DisableTask(db, taskID)
		if err != nil {
			return err
		}

		if affected == 0 {
			fmt.Printf("No scheduled task found with id %s\n", taskID)
			return nil
		}
		fmt.Printf("Disabled scheduled task %s (%d row updated)\n", taskID, affected)
		return nil
	})
	if err != nil {
		log.Error("Failed to disable scheduled task", zap.Error(err))
		os.Exit(1)
	}
}
