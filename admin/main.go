// Command admin drives the scheduler records from a terminal: it adds
// records through the same entry handlers as the feed API and writes
// exports to local files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/di"
	"github.com/temanskyM/scheduler-manager/settings"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd(connector(logger)).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// connector opens the dependencies configured in the environment.
func connector(logger *zap.Logger) connectFunc {
	return func(ctx context.Context) (*di.Container, error) {
		settingsData, err := settings.Load()
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(ctx, db.MAX_CONNECT_ELAPSED)
		defer cancel()
		return di.New(ctx, settingsData, logger)
	}
}
