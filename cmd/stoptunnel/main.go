// Stops a previously started ngrok tunnel by signalling the process whose id
// is recorded in the pid file, then removes the file. Unrelated to the
// database scripts.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"dbadmin/pkg/config"
	"dbadmin/pkg/logger"

	"go.uber.org/zap"
)

const pidFile = "ngrok.pid"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg)
	log := logger.GetLogger()

	data, err := os.ReadFile(pidFile)
	if err != nil {
		log.Error("Failed to read pid file", zap.String("file", pidFile), zap.Error(err))
		os.Exit(1)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		log.Error("Pid file does not contain a process id", zap.String("file", pidFile), zap.Error(err))
		os.Exit(1)
	}

	// FindProcess never fails on unix; the signal tells us if it is gone.
	proc, err := os.FindProcess(pid)
	if err != nil {
		log.Error("Failed to find tunnel process", zap.Int("pid", pid), zap.Error(err))
		os.Exit(1)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		log.Error("Failed to signal tunnel process", zap.Int("pid", pid), zap.Error(err))
		os.Exit(1)
	}

	if err := os.Remove(pidFile); err != nil {
		log.Warn("Tunnel stopped but pid file could not be removed", zap.String("file", pidFile), zap.Error(err))
	}

	fmt.Printf("Stopped tunnel process %d\n", pid)
}
