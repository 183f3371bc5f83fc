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

// Target trigger. Edit before running. Deletion is permanent.
const triggerID = "0c9e5d71-3f8a-4b2c-9e6d-7a1f4c8b2d50"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg)
	log := logger.GetLogger()

	err = database.Run(cfg, func(db *gorm.DB) error {
		name, err := ops.DeleteTrigger(db, triggerID)
		if err != nil {
			return err
		}

		fmt.Printf("Deleted trigger %q (%s)\n", name, triggerID)
		return nil
	})
	if err != nil {
		log.Error("Failed to delete trigger", zap.Error(err))
		os.Exit(1)
	}
}
