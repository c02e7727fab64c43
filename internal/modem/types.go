package modem

import "fmt"

// RegStatus 网络注册状态，取值对应 +CREG: <n>,<stat> 中的 <stat>。
type RegStatus int

const (
	RegNotRegistered RegStatus = 0 // 未注册
	RegHome          RegStatus = 1 // 已注册(本地)
	RegSearching     RegStatus = 2 // 搜索中
	RegDenied        RegStatus = 3 // 注册被拒绝
	RegUnknown       RegStatus = 4 // 未知
	RegRoaming       RegStatus = 5 // 已注册(漫游)
)

// regStatusFromCode 表外取值一律归入未知。
func regStatusFromCode(code int) RegStatus {
	switch code {
	case 0, 1, 2, 3, 5:
		return RegStatus(code)
	default:
		return RegUnknown
	}
}

func (s RegStatus) String() string {
	switch s {
	case RegNotRegistered:
		return "未注册"
	case RegHome:
		return "已注册(本地)"
	case RegSearching:
		return "搜索中..."
	case RegDenied:
		return "注册被拒绝"
	case RegRoaming:
		return "已注册(漫游)"
	default:
		return "未知"
	}
}

// Registered 本地或漫游注册均视为已联网。
func (s RegStatus) Registered() bool {
	return s == RegHome || s == RegRoaming
}

// Signal +CSQ 上报的信号质量。
type Signal struct {
	RSSI int // 0-31，99 表示不可检测
	BER  int // 误码率等级
}

// Undetectable RSSI 为 99 时信号不可检测。
func (s Signal) Undetectable() bool {
	return s.RSSI == 99
}

// DBm 按 -113 + 2*rssi 线性换算；不可检测时 ok 为 false。
func (s Signal) DBm() (int, bool) {
	if s.Undetectable() {
		return 0, false
	}
	return -113 + 2*s.RSSI, true
}

func (s Signal) String() string {
	if dbm, ok := s.DBm(); ok {
		return fmt.Sprintf("RSSI=%d (%ddBm)", s.RSSI, dbm)
	}
	return "未知或不可检测"
}

// ModuleInfo 模块基础信息汇总。查询失败的字段为空串。
type ModuleInfo struct {
	FirmwareVersion string
	IMEI            string
	SIMStatus       string
}
