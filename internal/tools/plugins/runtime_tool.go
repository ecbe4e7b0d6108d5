package plugins

import (
	"context"

	"ptable/internal/tools"
	"ptable/internal/util"
)

// RuntimeInfoTool 报告服务进程与主机的运行时信息
type RuntimeInfoTool struct{}

// NewRuntimeInfoTool 创建运行时信息工具
func NewRuntimeInfoTool() *RuntimeInfoTool {
	return &RuntimeInfoTool{}
}

func (t *RuntimeInfoTool) Name() string { return "runtime_info" }
func (t *RuntimeInfoTool) Description() string {
	return "Report process and host resource usage of the running registry service"
}

func (t *RuntimeInfoTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"disk_path": map[string]any{
			"type":        "string",
			"description": "path whose disk free space is reported",
			"default":     "/",
		},
	})
}

func (t *RuntimeInfoTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	path, ok, err := tools.StringArg(args, "disk_path")
	if err != nil {
		return "", err
	}
	if !ok || path == "" {
		path = "/"
	}

	info, err := util.CollectRuntimeInfo(ctx, path)
	if err != nil {
		return "", util.WrapToolError("获取运行时信息失败", err)
	}
	return marshalResult(info)
}
