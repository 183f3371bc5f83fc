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

const taskLimit = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg)
	log := logger.GetLogger()

	err = database.Run(cfg, func(db *gorm.DB) error {
		tasks, err := ops.RecentTasks(db, taskLimit)
		if err != nil {
			return err
		}

		fmt.Println("--- RECENT SCHEDULED TASKS ---")
		for i := range tasks {
			render.Task(os.Stdout, &tasks[i])
		}
		if len(tasks) == 0 {
			fmt.Println("No scheduled tasks found.")
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to list scheduled tasks", zap.Error(err))
		os.Exit(1)
	}
}
