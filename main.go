// EC800K/EG800K FOTA 升级测试工具
// 基于 Quectel LTE Standard(A)系列 DFOTA 升级指导 V1.4
//
// 升级流程：
// 1. 查询当前版本 (AT+QGMR)
// 2. 发送升级指令 (AT+QFOTADL="URL",mode,timeout)
// 3. 通过串口监视器观察 +QIND: "FOTA",... 进度上报（本工具不消费）
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.bug.st/serial"

	"ec800k-fota/internal/config"
	"ec800k-fota/internal/modem"
)

var (
	portFlag    string
	baudFlag    int
	configFlag  string
	verboseFlag bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "ec800k-fota",
	Short: "EC800K/EG800K FOTA 测试工具",
	Long: `EC800K/EG800K FOTA 测试工具
基于 Quectel LTE Standard(A)系列 DFOTA 升级指导 V1.4

不带子命令运行时执行基本测试（等价于 test）。`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTest,
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.PersistentFlags().StringVarP(&portFlag, "port", "p", "", "串口设备路径 (如 /dev/ttyUSB0、COM3)")
	rootCmd.PersistentFlags().IntVarP(&baudFlag, "baud", "b", 0, "波特率 (默认 115200)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML 配置文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "打印串口收发跟踪日志")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup 打印横幅并合并配置：命令行参数 > 配置文件 > 内置默认值。
func setup(cmd *cobra.Command, args []string) error {
	printBanner()
	listSerialPorts()

	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if portFlag != "" {
		cfg.PortName = portFlag
	}
	if baudFlag > 0 {
		cfg.BaudRate = baudFlag
	}
	return nil
}

func printBanner() {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("🚀 EC800K/EG800K FOTA 测试工具")
	fmt.Println("   基于 Quectel DFOTA升级指导 V1.4")
	fmt.Println(strings.Repeat("=", 50))
}

// openModem 打开串口会话。未指定串口时提示用法并返回 nil
// （不算失败，进程以 0 退出）；连接失败返回错误，进程以 1 退出。
func openModem() (*modem.Modem, error) {
	if cfg.PortName == "" {
		fmt.Println("💡 请通过 -p/--port 指定串口设备")
		return nil, nil
	}

	m := modem.New(cfg.PortName, cfg.BaudRate)
	m.SetTimeouts(cfg.CommandTimeout, cfg.FOTAAckTimeout)
	if verboseFlag {
		m.SetTraceLogger(newTraceLogger())
	}

	if err := m.Connect(); err != nil {
		color.Red("❌ %v", err)
		fmt.Println("\n💡 提示: 请检查串口连接和权限")
		return nil, err
	}
	return m, nil
}

func newTraceLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// listSerialPorts 列出主机上的可用串口。
func listSerialPorts() {
	ports, err := serial.GetPortsList()

	fmt.Println("\n📋 可用串口列表:")
	fmt.Println(strings.Repeat("-", 50))

	if err != nil {
		fmt.Printf("  获取串口列表失败: %v\n", err)
		return
	}
	if len(ports) == 0 {
		fmt.Println("  未发现可用串口")
	} else {
		for _, port := range ports {
			fmt.Printf("  %s\n", port)
		}
	}
	fmt.Println()
}
