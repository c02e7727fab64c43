package modem

import (
	"strings"
	"testing"
)

func TestFirmwareVersion(t *testing.T) {
	m, _ := newTestModem("AT+QGMR\r\nEG800KEULCR07A07M04_01.300.01.300\r\n\r\nOK\r\n")
	got := m.FirmwareVersion()
	if got != "EG800KEULCR07A07M04_01.300.01.300" {
		t.Errorf("版本解析错误: %q", got)
	}
}

func TestFirmwareVersionSkipsEchoAndOK(t *testing.T) {
	// 回显行与 OK 均不是版本
	m, _ := newTestModem("AT+QGMR\r\nOK\r\n")
	if got := m.FirmwareVersion(); got != "" {
		t.Errorf("无版本行时应返回空串, 实际 %q", got)
	}
}

func TestFirmwareVersionOnError(t *testing.T) {
	m, _ := newTestModem("ERROR\r\n")
	if got := m.FirmwareVersion(); got != "" {
		t.Errorf("交互失败时应返回空串, 实际 %q", got)
	}
}

func TestIMEIRawResponse(t *testing.T) {
	m, _ := newTestModem("861234567890123\r\n\r\nOK\r\n")
	got, ok := m.IMEI()
	if !ok {
		t.Fatal("IMEI 查询应成功")
	}
	// 原始响应不做解析，仅去除首部空白
	if !strings.HasPrefix(got, "861234567890123") {
		t.Errorf("IMEI 响应 %q", got)
	}
}

func TestSIMStatusReady(t *testing.T) {
	m, _ := newTestModem("+CPIN: READY\r\n\r\nOK\r\n")
	got, ok := m.SIMStatus()
	if !ok || got != "已就绪" {
		t.Errorf("SIMStatus() = (%q, %v)", got, ok)
	}
}

func TestSIMStatusNotReady(t *testing.T) {
	m, _ := newTestModem("+CPIN: SIM PIN\r\n\r\nOK\r\n")
	got, ok := m.SIMStatus()
	if !ok {
		t.Fatal("交互成功时 ok 应为 true")
	}
	if !strings.Contains(got, "+CPIN: SIM PIN") {
		t.Errorf("未就绪时应返回原始响应, 实际 %q", got)
	}
}

func TestNetworkRegistration(t *testing.T) {
	tests := []struct {
		resp   string
		status RegStatus
		ok     bool
	}{
		{"+CREG: 0,0\r\n\r\nOK\r\n", RegNotRegistered, true},
		{"+CREG: 0,1\r\n\r\nOK\r\n", RegHome, true},
		{"+CREG: 0,2\r\n\r\nOK\r\n", RegSearching, true},
		{"+CREG: 0,3\r\n\r\nOK\r\n", RegDenied, true},
		{"+CREG: 0,5\r\n\r\nOK\r\n", RegRoaming, true},
		{"+CREG: 0,4\r\n\r\nOK\r\n", RegUnknown, true},
		{"+CREG: 0,9\r\n\r\nOK\r\n", RegUnknown, true},
		{"+CREG: garbled\r\nOK\r\n", RegUnknown, false}, // 格式不符按未上报处理
		{"ERROR\r\n", RegUnknown, false},
	}
	for _, tt := range tests {
		m, _ := newTestModem(tt.resp)
		status, ok := m.NetworkRegistration()
		if status != tt.status || ok != tt.ok {
			t.Errorf("响应 %q: 得到 (%v, %v), 期望 (%v, %v)",
				tt.resp, status, ok, tt.status, tt.ok)
		}
	}
}

func TestRegStatusMapping(t *testing.T) {
	// {0,1,2,3,5} 之外的取值一律映射为未知
	for _, code := range []int{-1, 4, 6, 7, 42, 99} {
		if got := regStatusFromCode(code); got != RegUnknown {
			t.Errorf("regStatusFromCode(%d) = %v, 期望 RegUnknown", code, got)
		}
	}
	if RegUnknown.String() != "未知" {
		t.Errorf("RegUnknown.String() = %q", RegUnknown.String())
	}
}

func TestRegStatusRegistered(t *testing.T) {
	registered := map[RegStatus]bool{
		RegNotRegistered: false,
		RegHome:          true,
		RegSearching:     false,
		RegDenied:        false,
		RegUnknown:       false,
		RegRoaming:       true,
	}
	for status, want := range registered {
		if got := status.Registered(); got != want {
			t.Errorf("%v.Registered() = %v, 期望 %v", status, got, want)
		}
	}
}

func TestSignalQuality(t *testing.T) {
	m, _ := newTestModem("+CSQ: 16,99\r\n\r\nOK\r\n")
	sig, ok := m.SignalQuality()
	if !ok {
		t.Fatal("信号查询应成功")
	}
	if sig.RSSI != 16 || sig.BER != 99 {
		t.Errorf("Signal = %+v", sig)
	}
	dbm, detectable := sig.DBm()
	if !detectable || dbm != -81 {
		t.Errorf("DBm() = (%d, %v), 期望 (-81, true)", dbm, detectable)
	}
}

func TestSignalQualityUndetectable(t *testing.T) {
	m, _ := newTestModem("+CSQ: 99,99\r\n\r\nOK\r\n")
	sig, ok := m.SignalQuality()
	if !ok {
		t.Fatal("信号查询应成功")
	}
	if !sig.Undetectable() {
		t.Error("RSSI=99 应为不可检测")
	}
	if _, detectable := sig.DBm(); detectable {
		t.Error("不可检测时不应给出 dBm 值")
	}
	if sig.String() != "未知或不可检测" {
		t.Errorf("String() = %q", sig.String())
	}
}

func TestSignalQualityParseMismatch(t *testing.T) {
	m, _ := newTestModem("+CSQ: broken\r\nOK\r\n")
	if _, ok := m.SignalQuality(); ok {
		t.Error("格式不符时 ok 应为 false")
	}
}

func TestSignalDBmRange(t *testing.T) {
	// 线性换算 -113 + 2*rssi
	for rssi, want := range map[int]int{0: -113, 16: -81, 31: -51} {
		dbm, ok := (Signal{RSSI: rssi}).DBm()
		if !ok || dbm != want {
			t.Errorf("rssi=%d: DBm() = (%d, %v), 期望 (%d, true)", rssi, dbm, ok, want)
		}
	}
}

func TestPDPContext(t *testing.T) {
	m, _ := newTestModem("+CGACT: 1,1\r\n\r\nOK\r\n")
	got, ok := m.PDPContext()
	if !ok || !strings.Contains(got, "+CGACT: 1,1") {
		t.Errorf("PDPContext() = (%q, %v)", got, ok)
	}
}

func TestGetModuleInfoPartialFailure(t *testing.T) {
	// 版本查询失败，后续字段仍应尽力查询
	m, p := newTestModem("ERROR\r\n")
	p.rx.WriteString("861234567890123\r\nOK\r\n")
	p.rx.WriteString("+CPIN: READY\r\nOK\r\n")
	// 逐字节到达，保证每条响应在终止符处精确截断
	p.chunk = 1

	info := m.GetModuleInfo()
	if info.FirmwareVersion != "" {
		t.Errorf("版本查询失败时应为空, 实际 %q", info.FirmwareVersion)
	}
	if !strings.Contains(info.IMEI, "861234567890123") {
		t.Errorf("IMEI 缺失: %q", info.IMEI)
	}
	if info.SIMStatus != "已就绪" {
		t.Errorf("SIMStatus = %q", info.SIMStatus)
	}
}
