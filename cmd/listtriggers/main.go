package main

import (
	"fmt"
	"os"

	"dbadmin/internal/ops"
	"dbadmin/internal/render"
	"dbadmin/pkg/config"
	"dbadmin/pkg/database"
	"dbadmin/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const triggerLimit = 3

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg)
	log := logger.GetLogger()

	err = database.Run(cfg, func(db *gorm.DB) error {
		triggers, err := ops.RecentTriggers(db, triggerLimit)
		if err != nil {
			return err
		}

		fmt.Println("--- RECENT TRIGGERS ---")
		for i := range triggers {
			render.Trigger(os.Stdout, &triggers[i])
		}
		if len(triggers) == 0 {
			fmt.Println("No triggers found.")
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to list triggers", zap.Error(err))
		os.Exit(1)
	}
}
