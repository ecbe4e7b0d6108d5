package util

import (
	"context"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// RuntimeInfo 当前进程与主机的运行时信息
type RuntimeInfo struct {
	PID           int32   `json:"pid"`
	GoVersion     string  `json:"go_version"`
	Goroutines    int     `json:"goroutines"`
	CPUCount      int     `json:"cpu_count"`
	CPUPercent    float64 `json:"cpu_percent"`
	RSSMB         float64 `json:"rss_mb"`
	MemoryPercent float32 `json:"memory_percent"`
	HostMemoryGB  float64 `json:"host_memory_gb"`
	HostMemUsed   float64 `json:"host_memory_used_percent"`
	DiskPath      string  `json:"disk_path,omitempty"`
	DiskFreeGB    float64 `json:"disk_free_gb,omitempty"`
}

// CollectRuntimeInfo 采集运行时信息，diskPath 非空时附带该路径所在磁盘的剩余空间
func CollectRuntimeInfo(ctx context.Context, diskPath string) (*RuntimeInfo, error) {
	info := &RuntimeInfo{
		PID:        int32(os.Getpid()),
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
	}

	// 获取CPU数量
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.CPUCount = n
	}

	p, err := process.NewProcessWithContext(ctx, info.PID)
	if err != nil {
		return nil, WrapError(ErrCodeInternalErr, "获取进程信息失败", err)
	}

	// 获取进程CPU与内存占用
	if pct, err := p.CPUPercentWithContext(ctx); err == nil {
		info.CPUPercent = pct
	}
	if memInfo, err := p.MemoryInfoWithContext(ctx); err == nil {
		info.RSSMB = float64(memInfo.RSS) / 1024 / 1024
	}
	if pct, err := p.MemoryPercentWithContext(ctx); err == nil {
		info.MemoryPercent = pct
	}

	// 获取主机内存
	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, WrapError(ErrCodeInternalErr, "获取内存信息失败", err)
	}
	info.HostMemoryGB = float64(vmem.Total) / 1024 / 1024 / 1024
	info.HostMemUsed = vmem.UsedPercent

	if diskPath != "" {
		usage, err := disk.UsageWithContext(ctx, diskPath)
		if err != nil {
			Warnw("获取磁盘信息失败", map[string]any{"path": diskPath, "error": err.Error()})
		} else {
			info.DiskPath = diskPath
			info.DiskFreeGB = float64(usage.Free) / 1024 / 1024 / 1024
		}
	}

	return info, nil
}
