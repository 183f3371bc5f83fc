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

// Target tenant. Edit before running. Deletion is permanent.
const tenantID = "7b1f3c0a-9d2e-4f6b-8a1c-2e5d7f9b0c4a"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg)
	log := logger.GetLogger()

	err = database.Run(cfg, func(db *gorm.DB) error {
		name, err := ops.DeleteTenant(db, tenantID)
		if err != nil {
			return err
		}

		fmt.Printf("Deleted tenant %q (%s)\n", name, tenantID)
		return nil
	})
	if err != nil {
		log.Error("Failed to delete tenant", zap.Error(err))
		os.Exit(1)
	}
}
