package worker

import "djtracker/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// TaskRefreshEvents is the asynq task type scheduled when Redis is configured.
const TaskRefreshEvents = "events:refresh"
