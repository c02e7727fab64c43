package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "仅查询模组固件版本",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openModem()
		if err != nil {
			return err
		}
		if m == nil {
			return nil
		}
		defer m.Close()

		if version := m.FirmwareVersion(); version != "" {
			fmt.Printf("\n📌 固件版本: %s\n", version)
		} else {
			color.Red("\n❌ 无法获取版本")
		}
		fmt.Println("\n✨ 完成")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
