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

// Target tenant and channel. Edit before running.
const (
	tenantID = "7b1f3c0a-9d2e-4f6b-8a1c-2e5d7f9b0c4a"
	channel  = model.ChannelWhatsApp
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg)
	log := logger.GetLogger()

	err = database.Run(cfg, func(db *gorm.DB) error {
		affected, err := ops.SetTenantChannel(db, tenantID, channel)
		if err != nil {
			return err
		}

		if affected == 0 {
			fmt.Printf("No tenant found with id %s\n", tenantID)
			return nil
		}
		fmt.Printf("Switched tenant %s to channel %s (%d row updated)\n", tenantID, channel, affected)
		return nil
	})
	if err != nil {
		log.Error("Failed to update tenant channel", zap.Error(err))
		os.Exit(1)
	}
}
