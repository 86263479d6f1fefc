package main

import "github.com/temanskyM/scheduler-manager/query/server"

// Scheduler API: records, search and exports.
func main() {
	server.Init()
}
