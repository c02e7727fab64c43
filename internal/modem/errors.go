package modem

import "errors"

// 操作级错误。错误在产生它的操作内就地处理并转化为
// 状态文本与布尔结果，不跨操作边界抛出。
var (
	// ErrConnect 串口打开或配置失败，致命
	ErrConnect = errors.New("串口连接失败")
	// ErrNotConnected 会话未打开或已关闭
	ErrNotConnected = errors.New("串口未连接")
	// ErrWrite 写入失败或短写
	ErrWrite = errors.New("发送失败")
	// ErrURLTooLong FOTA 包地址超过文档规定的 700 字符上限
	ErrURLTooLong = errors.New("URL长度超过700字符限制")
)
