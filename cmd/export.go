package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"ptable/internal/common/errors"
	"ptable/internal/config"
	"ptable/internal/element"
	"ptable/internal/export"
	"ptable/internal/periodictable"
	"ptable/internal/util"
)

var (
	exportFormat  string
	exportPath    string
	exportMapping bool
)

// exportCmd 导出元素数据
var exportCmd = &cobra.Command{
	Use:   "export [category]",
	Short: "导出元素数据到文件",
	Long: `把全部元素或某个分类导出为 JSON、CSV 或 YAML。

默认写入配置的导出目录，文件名为分类名；--path - 输出到标准输出。
--mapping 导出整个注册表的名称映射和分类视图（仅 JSON）。`,
	Example: `  ptable export alkali_metals -f csv
  ptable export --mapping --path -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportMapping {
			return exportTableMapping(cmd)
		}

		name := "elements"
		els := table.Elements()
		if len(args) == 1 {
			c, err := periodictable.ParseCategory(args[0])
			if err != nil {
				return err
			}
			if els, err = table.Category(c); err != nil {
				return err
			}
			name = string(c)
		}
		return exportElements(cmd, name, els)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "导出格式: json, csv, yaml (默认取配置)")
	exportCmd.Flags().StringVarP(&exportPath, "path", "p", "", "输出文件路径，- 表示标准输出")
	exportCmd.Flags().BoolVar(&exportMapping, "mapping", false, "导出注册表映射")
}

func resolveExportFormat() (export.Format, error) {
	name := exportFormat
	if name == "" {
		name = config.GetConfig().Export.Format
	}
	return export.ParseFormat(name)
}

func exportElements(cmd *cobra.Command, name string, els []*element.Element) error {
	format, err := resolveExportFormat()
	if err != nil {
		return err
	}
	if exportPath == "-" {
		return export.Write(cmd.OutOrStdout(), format, els, exportOptions())
	}

	path := exportPath
	if path == "" {
		dir := util.ExpandHome(config.GetConfig().Export.Directory)
		path = filepath.Join(dir, name+format.Extension())
	}
	if err := export.SaveElements(path, format, els, exportOptions()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "已导出 %d 个元素到 %s\n", len(els), path)
	return nil
}

func exportTableMapping(cmd *cobra.Command) error {
	text, err := export.MappingJSON(table, periodictable.DefaultMappingOptions(), exportOptions())
	if err != nil {
		return err
	}
	if exportPath == "" || exportPath == "-" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}
	if err := util.WriteFile(exportPath, []byte(text+"\n")); err != nil {
		return errors.WrapExportError("写入映射文件失败", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "已导出注册表映射到 %s\n", exportPath)
	return nil
}
