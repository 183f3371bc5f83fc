package main

import (
	"fmt"
	"os"

	"dbadmin/internal/model"
	"dbadmin/internal/ops"
	"dbadmin/pkg/config"
	"dbadmin/pkg/database"
	"dbadmin/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Target tenant and status. Edit before running.
const (
	tenantPhone = "+15550100123"
	newStatus   = model.OnboardingLive
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg)
	log := logger.GetLogger()

	err = database.Run(cfg, func(db *gorm.DB) error {
		affected, err := ops.UpdateTenantOnboarding(db, tenantPhone, newStatus)
		if err != nil {
			return err
		}

		if affected == 0 {
			fmt.Printf("No tenant found with phone %s\n", tenantPhone)
			return nil
		}
		fmt.Printf("Tenant %s moved to onboarding status %s (%d row updated)\n", tenantPhone, newStatus, affected)
		return nil
	})
	if err != nil {
		log.Error("Failed to update onboarding status", zap.Error(err))
		os.Exit(1)
	}
}
