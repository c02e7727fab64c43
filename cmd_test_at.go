package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ec800k-fota/internal/modem"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "基本测试：AT 通信、模块信息、网络状态（默认命令）",
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	m, err := openModem()
	if err != nil {
		return err
	}
	if m == nil {
		return nil
	}
	defer m.Close()

	runBasicTest(m)
	fmt.Println("\n✨ 完成")
	return nil
}

func runBasicTest(m *modem.Modem) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("📡 EC800K/EG800K 基本测试")
	fmt.Println(strings.Repeat("=", 50))

	fmt.Println("\n[1/3] AT通信测试...")
	if !m.TestAT() {
		color.Red("❌ AT通信失败")
		return
	}
	color.Green("✅ AT通信正常")

	fmt.Println("\n[2/3] 获取模块信息...")
	info := m.GetModuleInfo()
	if info.FirmwareVersion != "" {
		fmt.Printf("  firmware_version: %s\n", info.FirmwareVersion)
	}
	if info.IMEI != "" {
		fmt.Printf("  IMEI响应: %s\n", strings.TrimSpace(info.IMEI))
	}
	if info.SIMStatus != "" {
		fmt.Printf("  sim_status: %s\n", strings.TrimSpace(info.SIMStatus))
	}

	fmt.Println("\n[3/3] 检查网络状态...")
	if reg, ok := m.NetworkRegistration(); ok {
		fmt.Printf("  network_reg: %s\n", reg)
	}
	if sig, ok := m.SignalQuality(); ok {
		fmt.Printf("  signal: %s\n", sig)
	}
	if pdp, ok := m.PDPContext(); ok {
		fmt.Printf("  pdp_context: %s\n", strings.TrimSpace(pdp))
	}
}
