package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ec800k-fota/internal/modem"
)

var fotaCmd = &cobra.Command{
	Use:   "fota URL [mode] [timeout]",
	Short: "触发 DFOTA 差分升级",
	Long: `触发 DFOTA 差分升级。

参数:
  URL      FOTA 差分包下载地址 (HTTP/HTTPS，最长 700 字符)
  mode     0=手动重启, 1=自动重启（默认 0）
  timeout  AT+QFOTADL 指令中的超时参数，单位秒（默认 50）

指令被模组确认(OK)即视为触发成功；随后的下载与升级在模组
固件内进行，进度经 +QIND: "FOTA",... URC 上报，请使用串口
监视器观察，本工具不消费这些上报。`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runFOTA,
}

func init() {
	rootCmd.AddCommand(fotaCmd)
}

func runFOTA(cmd *cobra.Command, args []string) error {
	url := args[0]
	mode := cfg.FOTA.Mode
	timeoutSec := cfg.FOTA.TimeoutSec

	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || (v != modem.ResetManual && v != modem.ResetAuto) {
			return fmt.Errorf("mode 参数无效: %s (应为 0 或 1)", args[1])
		}
		mode = v
	}
	if len(args) > 2 {
		v, err := strconv.Atoi(args[2])
		if err != nil || v <= 0 {
			return fmt.Errorf("timeout 参数无效: %s", args[2])
		}
		timeoutSec = v
	}

	m, err := openModem()
	if err != nil {
		return err
	}
	if m == nil {
		return nil
	}
	defer m.Close()

	if ok, msg := m.FOTAUpgrade(url, mode, timeoutSec); ok {
		color.Green("✅ %s", msg)
	} else {
		color.Red("❌ %s", msg)
	}

	fmt.Println("\n✨ 完成")
	return nil
}
