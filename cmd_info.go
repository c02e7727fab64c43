package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "显示 FOTA 错误码与 URC 上报说明（不访问串口）",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printErrorCodes()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// fotaErrorCodes +QIND: "FOTA","END",<err> 的结果码。
var fotaErrorCodes = []struct {
	code int
	desc string
}{
	{0, "升级成功"},
	{504, "升级失败"},
	{505, "包校验出错"},
	{506, "固件MD5检查错误"},
	{507, "包版本不匹配"},
	{552, "包项目名不匹配"},
	{553, "包基线名不匹配"},
}

func printErrorCodes() {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("📖 FOTA 错误码说明")
	fmt.Println(strings.Repeat("=", 50))

	fmt.Println("\n【FOTA升级错误码】(+QIND: \"FOTA\",\"END\",<err>)")
	for _, e := range fotaErrorCodes {
		fmt.Printf("  %d: %s\n", e.code, e.desc)
	}

	fmt.Println("\n【+QIND URC上报说明】")
	fmt.Println("  +QIND: \"FOTA\",\"HTTPSTART\"     - 开始HTTP下载")
	fmt.Println("  +QIND: \"FOTA\",\"HTTPEND\",<err> - HTTP下载结束")
	fmt.Println("  +QIND: \"FOTA\",\"UPDATING\",<%>  - 升级进度(7%-96%)")
	fmt.Println("  +QIND: \"FOTA\",\"END\",<err>     - 升级结束(0=成功)")
}
