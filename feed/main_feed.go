package main

import (
	"github.com/temanskyM/scheduler-manager/feed/server"
)

// Scheduler Feed API: entry forms, record deletion, export upload.
func main() {
	server.Init()
}
