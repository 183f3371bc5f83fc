package main

import (
	"fmt"
	"os"

	"dbadmin/internal/model"
	"dbadmin/internal/ops"
	"dbadmin/internal/render"
	"dbadmin/pkg/config"
	"dbadmin/pkg/database"
	"dbadmin/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Target tenant. Edit before running.
var tenant = ops.TenantParams{
	Name:    "Test Tenant",
	Phone:   "+15550100123",
	Channel: model.ChannelSMS,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg)
	log := logger.GetLogger()

	err = database.Run(cfg, func(db *gorm.DB) error {
		result, err := ops.CreateTenant(db, tenant)
		if err != nil {
			return err
		}

		if result.Created {
			fmt.Println("Tenant created:")
		} else {
			fmt.Printf("Tenant with phone %s already exists:\n", tenant.Phone)
		}
		render.Tenant(os.Stdout, result.Tenant)
		return nil
	})
	if err != nil {
		log.Error("Failed to create tenant", zap.Error(err))
		os.Exit(1)
	}
}
