package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/cmd/soultv/cmds"
)

func main() {
	cobra.CheckErr(cmds.NewRootCLI().ExecuteContext(context.Background()))
}
