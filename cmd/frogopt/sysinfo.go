package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/frogtech/optimizer/pkg/optimizer/output"
	"github.com/frogtech/optimizer/pkg/optimizer/sysinfo"
)

var sysinfoRefresh bool

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show hardware and OS information",
	Long: `Show a system snapshot: OS, CPU, memory, disks, and GPUs.
Snapshots are cached briefly because probing WMI is slow; --refresh forces
a fresh collection.`,
	RunE: runSysinfo,
}

func init() {
	sysinfoCmd.Flags().BoolVarP(&sysinfoRefresh, "refresh", "r", false, "ignore the cached snapshot")
	rootCmd.AddCommand(sysinfoCmd)
}

func runSysinfo(cmd *cobra.Command, args []string) error {
	store := openSysinfoStore()
	if store != nil {
		defer store.Close()
		if sysinfoRefresh {
			_ = store.Invalidate()
		}
	}

	info, err := sysinfo.CollectCached(cmd.Context(), store)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return output.JSON(os.Stdout, info)
	}

	output.RenderSysInfo(os.Stdout, info)
	return nil
}
