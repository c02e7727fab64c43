package modem

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reCREG = regexp.MustCompile(`\+CREG:\s*(\d+),(\d+)`)
	reCSQ  = regexp.MustCompile(`\+CSQ:\s*(\d+),(\d+)`)
)

// TestAT AT 通信探测，交互成功即认为链路正常。
func (m *Modem) TestAT() bool {
	ok, _ := m.SendCommand(cmdProbe, m.cmdTimeout)
	return ok
}

// FirmwareVersion 查询固件版本 (AT+QGMR)。
// 版本号是响应中第一个既非指令回显也非 OK 的非空行，
// 形如 EG800KEULCR07A07M04_01.300.01.300。查询失败返回空串。
func (m *Modem) FirmwareVersion() string {
	ok, resp := m.SendCommand(cmdVersion, m.cmdTimeout)
	if !ok {
		return ""
	}
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "AT") && line != RespOK {
			return line
		}
	}
	return ""
}

// IMEI 查询模块 IMEI (AT+GSN)，返回原始响应文本，不做进一步解析。
func (m *Modem) IMEI() (string, bool) {
	ok, resp := m.SendCommand(cmdIMEI, m.cmdTimeout)
	return resp, ok
}

// SIMStatus 查询 SIM 卡状态 (AT+CPIN?)。
// 响应含 READY 时返回"已就绪"，否则返回原始响应。
func (m *Modem) SIMStatus() (string, bool) {
	ok, resp := m.SendCommand(cmdSIMPIN, m.cmdTimeout)
	if !ok {
		return resp, false
	}
	if strings.Contains(resp, respSIMReady) {
		return "已就绪", true
	}
	return resp, true
}

// NetworkRegistration 查询网络注册状态 (AT+CREG?)，
// 解析 +CREG: <n>,<stat> 两整数应答。响应不符合该格式时
// 按"未上报"处理，返回 (RegUnknown, false)，不视为致命错误。
func (m *Modem) NetworkRegistration() (RegStatus, bool) {
	ok, resp := m.SendCommand(cmdNetReg, m.cmdTimeout)
	if !ok {
		return RegUnknown, false
	}
	match := reCREG.FindStringSubmatch(resp)
	if match == nil {
		m.trace.Debug().Str("resp", resp).Msg("creg parse mismatch")
		return RegUnknown, false
	}
	code, _ := strconv.Atoi(match[2])
	return regStatusFromCode(code), true
}

// SignalQuality 查询信号质量 (AT+CSQ)，解析 +CSQ: <rssi>,<ber>。
func (m *Modem) SignalQuality() (Signal, bool) {
	ok, resp := m.SendCommand(cmdSignal, m.cmdTimeout)
	if !ok {
		return Signal{}, false
	}
	match := reCSQ.FindStringSubmatch(resp)
	if match == nil {
		m.trace.Debug().Str("resp", resp).Msg("csq parse mismatch")
		return Signal{}, false
	}
	rssi, _ := strconv.Atoi(match[1])
	ber, _ := strconv.Atoi(match[2])
	return Signal{RSSI: rssi, BER: ber}, true
}

// PDPContext 查询 PDP 上下文激活状态 (AT+CGACT?)，返回原始响应。
func (m *Modem) PDPContext() (string, bool) {
	ok, resp := m.SendCommand(cmdPDPContext, m.cmdTimeout)
	return resp, ok
}

// FOTAStatus 查询模组当前的 FOTA 下载状态 (AT+QFOTADL?)。
func (m *Modem) FOTAStatus() (string, bool) {
	ok, resp := m.SendCommand(cmdFOTAQuery, m.cmdTimeout)
	return resp, ok
}

// GetModuleInfo 汇总模块基础信息，单个字段查询失败不影响其余字段。
func (m *Modem) GetModuleInfo() ModuleInfo {
	info := ModuleInfo{
		FirmwareVersion: m.FirmwareVersion(),
	}
	if imei, ok := m.IMEI(); ok {
		info.IMEI = imei
	}
	if sim, ok := m.SIMStatus(); ok {
		info.SIMStatus = sim
	}
	return info
}
