// Package modem 实现 EC800K/EG800K 模块的串口会话、AT 指令交互
// 与 DFOTA 升级触发。
//
// 一个 Modem 对应一个串口句柄，严格请求/响应交替，
// 同一时刻至多一条指令在途。
package modem

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"go.bug.st/serial"
)

const (
	// DefaultBaudRate 模组默认波特率
	DefaultBaudRate = 115200
	// ATTimeout 普通 AT 指令的默认超时
	ATTimeout = 2 * time.Second
	// FOTAAckTimeout 升级指令只需被确认而非执行完成，超时略长
	FOTAAckTimeout = 5 * time.Second

	// pollInterval 读轮询粒度
	pollInterval = 50 * time.Millisecond
	// bufferSize 单条响应的最大累积字节数，满则停止读取
	bufferSize = 1024
)

// Port 串口能力接口。go.bug.st/serial.Port 满足该接口，
// 测试注入内存实现。读超时语义：无数据到达时返回 (0, nil)。
type Port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
}

// Modem 模块控制结构。port 为 nil 表示会话已关闭，
// 所有操作快速失败，不存在半初始化状态。
type Modem struct {
	portPath   string
	baudRate   int
	port       Port
	cmdTimeout time.Duration
	ackTimeout time.Duration
	trace      zerolog.Logger
}

// New 创建模块实例，此时尚未打开串口。
func New(portPath string, baudRate int) *Modem {
	return &Modem{
		portPath:   portPath,
		baudRate:   baudRate,
		cmdTimeout: ATTimeout,
		ackTimeout: FOTAAckTimeout,
		trace:      zerolog.Nop(),
	}
}

// SetTimeouts 覆盖普通指令与升级指令确认的超时时间。
func (m *Modem) SetTimeouts(cmd, fotaAck time.Duration) {
	if cmd > 0 {
		m.cmdTimeout = cmd
	}
	if fotaAck > 0 {
		m.ackTimeout = fotaAck
	}
}

// SetTraceLogger 设置串口收发跟踪日志。
func (m *Modem) SetTraceLogger(l zerolog.Logger) {
	m.trace = l
}

// Connect 以 8N1 裸模式打开串口并清空收发缓冲区。
func (m *Modem) Connect() error {
	mode := &serial.Mode{
		BaudRate: m.baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(m.portPath, mode)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConnect, m.portPath, err)
	}
	port.ResetInputBuffer()
	port.ResetOutputBuffer()

	m.port = port
	log("✅ 串口连接成功: %s @ %dbps", m.portPath, m.baudRate)
	return nil
}

// Close 关闭串口。可重复调用。
func (m *Modem) Close() {
	if m.port != nil {
		m.port.Close()
		m.port = nil
		log("🔌 串口已断开")
	}
}

// Connected 串口是否可用。
func (m *Modem) Connected() bool {
	return m.port != nil
}

// log 带时间戳的状态输出
func log(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("[%s] %s\n", timestamp, msg)
}
