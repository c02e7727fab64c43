package modem

import (
	"fmt"
	"strings"
)

// MaxFOTAURLLen DFOTA 文档规定的包地址上限（字符数）。
const MaxFOTAURLLen = 700

// 升级完成后的重启方式。
const (
	ResetManual = 0 // 手动重启
	ResetAuto   = 1 // 自动重启
)

// FOTAUpgrade 触发 DFOTA 差分升级，返回触发结果与状态说明。
//
// 流程：查询当前版本（尽力而为）→ 校验网络注册 → 发送
// AT+QFOTADL="URL",升级模式,超时时间。指令被模组确认(OK)即视为
// 触发成功；随后的下载与升级完全在模组固件内进行，进度经
// +QIND: "FOTA",... URC 上报，本工具不消费这些上报，
// 仅提示操作者用串口监视器观察。
func (m *Modem) FOTAUpgrade(url string, autoReset, timeoutSec int) (bool, string) {
	// 文档规定 URL 不超过 700 字符，超限在任何 I/O 之前拒绝
	if len(url) > MaxFOTAURLLen {
		return false, ErrURLTooLong.Error()
	}

	fmt.Println("\n" + strings.Repeat("=", 50))
	log("🔄 开始FOTA升级")
	fmt.Println(strings.Repeat("=", 50))

	// 1. 查询当前版本，拿不到版本不阻断流程
	log("\n[步骤1] 查询当前固件版本...")
	if version := m.FirmwareVersion(); version != "" {
		log("📌 当前版本: %s", version)
	}

	// 2. 检查网络状态，未注册(本地/漫游)则中止
	log("\n[步骤2] 检查网络状态...")
	reg, ok := m.NetworkRegistration()
	if !ok || !reg.Registered() {
		return false, fmt.Sprintf("网络未注册: %s", reg)
	}
	log("✅ 网络已连接: %s", reg)
	if sig, ok := m.SignalQuality(); ok {
		log("📶 信号强度: %s", sig)
	}

	// 3. 发送FOTA升级指令
	log("\n[步骤3] 发送FOTA升级指令...")
	log("📎 URL: %s", url)
	modeStr := "手动重启"
	if autoReset == ResetAuto {
		modeStr = "自动重启"
	}
	log("📎 升级模式: %s", modeStr)
	log("📎 超时时间: %d秒", timeoutSec)

	cmd := fmt.Sprintf(cmdFOTAFmt, url, autoReset, timeoutSec)
	ok, resp := m.SendCommand(cmd, m.ackTimeout)
	if !ok {
		return false, fmt.Sprintf("指令发送失败: %s", strings.TrimSpace(resp))
	}

	log("✅ 指令发送成功，模组开始下载固件包...")
	log("\n[步骤4] 等待升级进度上报...")
	log(`(请通过串口监视器观察 +QIND: "FOTA","UPDATING",进度 上报)`)

	return true, "FOTA升级已启动"
}
