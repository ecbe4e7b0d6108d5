package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"ptable/internal/common/errors"
)

// 全局配置实例
var Config *AppConfig

// 应用配置结构
type AppConfig struct {
	Logging LoggingConfig `toml:"logging"`
	Display DisplayConfig `toml:"display"`
	Export  ExportConfig  `toml:"export"`
	MCP     MCPConfig     `toml:"mcp"`
}

// 日志配置
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, text
	Output string `toml:"output"` // stdout, stderr, file
	File   string `toml:"file"`   // 日志文件路径
}

// 显示配置
type DisplayConfig struct {
	Style           string `toml:"style"`            // auto, dark, light, notty
	WordWrap        int    `toml:"word_wrap"`        // markdown 渲染宽度
	TemperatureUnit string `toml:"temperature_unit"` // k, c, f
}

// 导出配置
type ExportConfig struct {
	Directory  string `toml:"directory"`
	Format     string `toml:"format"`      // json, csv, yaml
	JSONIndent int    `toml:"json_indent"` // JSON 缩进空格数
	Compact    bool   `toml:"compact"`     // JSON 紧凑分隔符
}

// MCP服务配置
type MCPConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Timeout int    `toml:"timeout"` // 单次工具调用超时时间（秒）
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "text"}
	validOutputs = []string{"stdout", "stderr", "file"}
	validStyles  = []string{"auto", "dark", "light", "notty"}
	validUnits   = []string{"k", "c", "f"}
	validExports = []string{"json", "csv", "yaml"}
)

// 默认配置文件内容
const defaultConfigContent = `# ptable 配置文件

[logging]
level = "info"
format = "text"
output = "stderr"
file = ""

[display]
style = "auto"
word_wrap = 80
temperature_unit = "k"

[export]
directory = "exports"
format = "json"
json_indent = 2
compact = false

[mcp]
name = "ptable"
version = "1.0.0"
timeout = 30
`

// DefaultConfig 返回默认配置，与默认配置文件内容一致
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Logging: LoggingConfig{Level: "info", Format: "text", Output: "stderr"},
		Display: DisplayConfig{Style: "auto", WordWrap: 80, TemperatureUnit: "k"},
		Export:  ExportConfig{Directory: "exports", Format: "json", JSONIndent: 2},
		MCP:     MCPConfig{Name: "ptable", Version: "1.0.0", Timeout: 30},
	}
}

// 加载配置文件
func LoadConfig(configPath string) error {
	// 如果没有指定配置文件路径，使用默认路径
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 检查配置文件是否存在
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// 创建默认配置文件
		if err := createDefaultConfig(configPath); err != nil {
			return errors.WrapError(errors.ErrCodeConfigLoadFailed, "创建默认配置文件失败", err)
		}
		fmt.Fprintf(os.Stderr, "已创建默认配置文件: %s\n", configPath)
	}

	// 解析TOML配置文件，未出现的键保留默认值
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return errors.WrapError(errors.ErrCodeConfigParseFailed, "解析配置文件失败", err)
	}

	// 使用环境变量覆盖配置
	overrideWithEnv(config)

	// 验证配置
	if err := validateConfig(config); err != nil {
		return err
	}

	// 设置全局配置
	Config = config
	return nil
}

// 获取默认配置文件路径
func getDefaultConfigPath() string {
	// 优先使用当前目录下的config.toml
	if _, err := os.Stat("config.toml"); err == nil {
		return "config.toml"
	}

	// 使用用户主目录下的配置文件
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}

	return filepath.Join(homeDir, ".ptable", "config.toml")
}

// 创建默认配置文件
func createDefaultConfig(configPath string) error {
	// 确保目录存在
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(configPath, []byte(defaultConfigContent), 0644)
}

// 使用环境变量覆盖配置
func overrideWithEnv(config *AppConfig) {
	// 日志配置
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = strings.ToLower(level)
	}

	// 显示配置
	if style := os.Getenv("PTABLE_DISPLAY_STYLE"); style != "" {
		config.Display.Style = strings.ToLower(style)
	}
	if unit := os.Getenv("PTABLE_TEMPERATURE_UNIT"); unit != "" {
		config.Display.TemperatureUnit = strings.ToLower(unit)
	}

	// 导出配置
	if dir := os.Getenv("PTABLE_EXPORT_DIR"); dir != "" {
		config.Export.Directory = dir
	}
}

// 验证配置
func validateConfig(config *AppConfig) error {
	checks := []struct {
		field string
		value string
		valid []string
	}{
		{"logging.level", config.Logging.Level, validLevels},
		{"logging.format", config.Logging.Format, validFormats},
		{"logging.output", config.Logging.Output, validOutputs},
		{"display.style", config.Display.Style, validStyles},
		{"display.temperature_unit", strings.ToLower(config.Display.TemperatureUnit), validUnits},
		{"export.format", strings.ToLower(config.Export.Format), validExports},
	}
	for _, c := range checks {
		if !slices.Contains(c.valid, c.value) {
			return errors.NewConfigErrorWithDetails("配置验证失败",
				fmt.Sprintf("无效的 %s: %q，可选值: %s", c.field, c.value, strings.Join(c.valid, ", ")))
		}
	}

	if config.Logging.Output == "file" && config.Logging.File == "" {
		return errors.NewConfigErrorWithDetails("配置验证失败", "logging.output 为 file 时必须设置 logging.file")
	}
	if config.Display.WordWrap < 0 {
		return errors.NewConfigErrorWithDetails("配置验证失败", "display.word_wrap 不能为负数")
	}
	if config.Export.JSONIndent < 0 || config.Export.JSONIndent > 8 {
		return errors.NewConfigErrorWithDetails("配置验证失败",
			fmt.Sprintf("export.json_indent 必须在 0 到 8 之间，实际为 %d", config.Export.JSONIndent))
	}
	if config.MCP.Timeout <= 0 {
		return errors.NewConfigErrorWithDetails("配置验证失败",
			fmt.Sprintf("mcp.timeout 必须为正数，实际为 %d", config.MCP.Timeout))
	}

	return nil
}

// 获取当前配置，未加载时返回默认配置
func GetConfig() *AppConfig {
	if Config == nil {
		return DefaultConfig()
	}
	return Config
}
