// Package sysinfo collects a hardware and OS snapshot for display and for
// the ledger's export metadata. Collection can be slow on Windows (WMI), so
// snapshots are cached in a small Badger store with a TTL.
package sysinfo

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/frogtech/optimizer/pkg/optimizer/logging"
)

// CPUInfo describes the processor.
type CPUInfo struct {
	Model    string  `json:"model"`
	Cores    int     `json:"cores"`
	Threads  int     `json:"threads"`
	ClockMHz float64 `json:"clock_mhz"`
}

// MemoryInfo describes physical memory.
type MemoryInfo struct {
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
}

// DiskInfo describes one mounted filesystem.
type DiskInfo struct {
	Mount       string  `json:"mount"`
	Fstype      string  `json:"fstype"`
	Total       uint64  `json:"total"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"used_percent"`
}

// Info is a point-in-time system snapshot.
type Info struct {
	Hostname        string     `json:"hostname"`
	Platform        string     `json:"platform"`
	PlatformVersion string     `json:"platform_version"`
	Kernel          string     `json:"kernel"`
	Uptime          uint64     `json:"uptime"`
	CPU             CPUInfo    `json:"cpu"`
	Memory          MemoryInfo `json:"memory"`
	Disks           []DiskInfo `json:"disks"`
	GPUs            []string   `json:"gpus"`
	GoVersion       string     `json:"go_version"`
	CollectedAt     time.Time  `json:"collected_at"`
}

// Collect gathers a fresh snapshot. Individual probe failures degrade the
// snapshot rather than failing it; only a total host probe failure is an
// error.
func Collect(ctx context.Context) (*Info, error) {
	logger := logging.Get("sysinfo")

	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("probe host: %w", err)
	}

	info := &Info{
		Hostname:        hostInfo.Hostname,
		Platform:        hostInfo.Platform,
		PlatformVersion: hostInfo.PlatformVersion,
		Kernel:          hostInfo.KernelVersion,
		Uptime:          hostInfo.Uptime,
		GoVersion:       runtime.Version(),
		CollectedAt:     time.Now(),
	}

	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		info.CPU.Model = cpus[0].ModelName
		info.CPU.ClockMHz = cpus[0].Mhz
	} else if err != nil {
		logger.Warn("cpu probe failed", "error", err)
	}

	if cores, err := cpu.CountsWithContext(ctx, false); err == nil {
		info.CPU.Cores = cores
	}
	if threads, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.CPU.Threads = threads
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.Memory = MemoryInfo{
			Total:       vm.Total,
			Used:        vm.Used,
			UsedPercent: vm.UsedPercent,
		}
	} else {
		logger.Warn("memory probe failed", "error", err)
	}

	if parts, err := disk.PartitionsWithContext(ctx, false); err == nil {
		for _, p := range parts {
			usage, uerr := disk.UsageWithContext(ctx, p.Mountpoint)
			if uerr != nil {
				continue
			}
			info.Disks = append(info.Disks, DiskInfo{
				Mount:       p.Mountpoint,
				Fstype:      p.Fstype,
				Total:       usage.Total,
				Free:        usage.Free,
				UsedPercent: usage.UsedPercent,
			})
		}
	} else {
		logger.Warn("disk probe failed", "error", err)
	}

	info.GPUs = probeGPUs(ctx)

	return info, nil
}
