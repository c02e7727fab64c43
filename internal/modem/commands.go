package modem

// 本工具消耗的 AT 指令集。交互层统一追加 CR/LF，此处不带。
const (
	cmdProbe      = "AT"          // 通信探测
	cmdVersion    = "AT+QGMR"     // 固件版本
	cmdIMEI       = "AT+GSN"      // IMEI
	cmdSIMPIN     = "AT+CPIN?"    // SIM 卡状态
	cmdNetReg     = "AT+CREG?"    // 网络注册状态
	cmdSignal     = "AT+CSQ"      // 信号质量
	cmdPDPContext = "AT+CGACT?"   // PDP 上下文激活状态
	cmdFOTAQuery  = "AT+QFOTADL?" // FOTA 下载状态

	// cmdFOTAFmt 升级指令: AT+QFOTADL="URL",升级模式,超时时间
	cmdFOTAFmt = `AT+QFOTADL="%s",%d,%d`
)

// 响应终止符。按子串匹配，与模组方言保持一致。
const (
	RespOK    = "OK"
	RespError = "ERROR"

	respSIMReady = "READY"
)
