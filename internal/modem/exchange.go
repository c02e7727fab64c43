package modem

import (
	"fmt"
	"strings"
	"time"
)

// SendCommand 发送一条 AT 指令并轮询读取响应，直到累积文本中出现
// OK/ERROR 终止符、累积满 1024 字节或超时。返回是否成功（出现 OK）
// 以及去除首部 CR/LF/空格后的响应文本。
//
// 终止符按子串匹配：这是实测的模组方言，载荷行中出现字面 "OK"
// 同样会提前结束读取。调用方需容忍指令回显、多行载荷以及
// 模组主动上报的 URC 行混在响应里。
func (m *Modem) SendCommand(cmd string, timeout time.Duration) (bool, string) {
	if m.port == nil {
		return false, ErrNotConnected.Error()
	}

	// 无论调用方是否已带换行，仅追加一次 CR/LF
	cmd = strings.TrimRight(cmd, "\r\n \t")
	log("📤 发送: %s", cmd)
	m.trace.Debug().Str("cmd", cmd).Dur("timeout", timeout).Msg("tx")

	payload := []byte(cmd + "\r\n")
	if n, err := m.port.Write(payload); err != nil || n < len(payload) {
		m.trace.Debug().Err(err).Int("written", n).Msg("tx failed")
		return false, fmt.Sprintf("%s: %v", ErrWrite, err)
	}

	m.port.SetReadTimeout(pollInterval)

	var response strings.Builder
	buf := make([]byte, 256)
	start := time.Now()

	for time.Since(start) < timeout {
		room := bufferSize - response.Len()
		if room <= 0 {
			break
		}
		if room > len(buf) {
			room = len(buf)
		}

		n, err := m.port.Read(buf[:room])
		if err != nil {
			m.trace.Debug().Err(err).Msg("rx failed")
			break
		}
		if n == 0 {
			// 本轮无数据到达，继续等
			continue
		}

		response.Write(buf[:n])
		m.trace.Debug().Str("chunk", string(buf[:n])).Msg("rx")

		s := response.String()
		if strings.Contains(s, RespOK) || strings.Contains(s, RespError) {
			break
		}
	}

	resp := strings.TrimLeft(response.String(), "\r\n ")
	if resp != "" {
		log("📥 响应: %s", strings.TrimSpace(resp))
	}

	return strings.Contains(resp, RespOK), resp
}
