package cmd

import (
	"fmt"

	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"ptable/internal/periodictable"
)

// categoryCmd 列出分类或分类中的元素
var categoryCmd = &cobra.Command{
	Use:   "category [name]",
	Short: "元素分类",
	Long: `不带参数时列出全部分类及元素数量；
带分类名称时列出该分类的元素，名称中的 "-" 等同于 "_"。`,
	Example: "  ptable category\n  ptable category noble-gases -o csv",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listCategories(cmd)
		}
		c, err := periodictable.ParseCategory(args[0])
		if err != nil {
			return err
		}
		els, err := table.Category(c)
		if err != nil {
			return err
		}
		return writeElements(cmd.OutOrStdout(), els)
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	addListFlags(categoryCmd)
}

func listCategories(cmd *cobra.Command) error {
	t := lgtable.New().Headers("Category", "Elements")
	for _, c := range periodictable.Categories() {
		els, err := table.Category(c)
		if err != nil {
			return err
		}
		t.Row(string(c), fmt.Sprint(len(els)))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return err
}
