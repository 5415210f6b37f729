package main

import (
	"gradepoint-backend/cmd/gradepoint-cli/commands"
	"gradepoint-backend/lib/serviceutil"
	"gradepoint-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "gradepoint-cli")
	telemetry.InitSlog(true)
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
