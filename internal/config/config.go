// Package config 加载工具的 YAML 配置文件，缺省字段回填内置默认值。
// 命令行参数优先于配置文件。
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// 内置默认值
const (
	DefaultBaudRate       = 115200
	DefaultCommandTimeout = 2 * time.Second
	DefaultFOTAAckTimeout = 5 * time.Second
	DefaultFOTAMode       = 0
	DefaultFOTATimeoutSec = 50
)

// FOTA 升级指令的默认参数。
type FOTA struct {
	Mode       int `yaml:"Mode"`       // 0=手动重启, 1=自动重启
	TimeoutSec int `yaml:"TimeoutSec"` // AT+QFOTADL 指令中的超时参数（秒）
}

// Config 工具配置。
type Config struct {
	PortName       string        `yaml:"PortName"`       // 串口设备路径
	BaudRate       int           `yaml:"BaudRate"`       // 波特率
	CommandTimeout time.Duration `yaml:"CommandTimeout"` // 普通 AT 指令超时
	FOTAAckTimeout time.Duration `yaml:"FOTAAckTimeout"` // 升级指令确认超时
	FOTA           FOTA          `yaml:"FOTA"`
}

// Default 返回内置默认配置。
func Default() Config {
	return Config{
		BaudRate:       DefaultBaudRate,
		CommandTimeout: DefaultCommandTimeout,
		FOTAAckTimeout: DefaultFOTAAckTimeout,
		FOTA: FOTA{
			Mode:       DefaultFOTAMode,
			TimeoutSec: DefaultFOTATimeoutSec,
		},
	}
}

// Load 读取并解析配置文件。
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("读取配置文件失败: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate 校验取值并为显式置零的字段回填默认值。
func (c *Config) validate() error {
	if c.BaudRate <= 0 {
		c.BaudRate = DefaultBaudRate
	}
	if c.CommandTimeout <= 0 {
		c.CommandTimeout = DefaultCommandTimeout
	}
	if c.FOTAAckTimeout <= 0 {
		c.FOTAAckTimeout = DefaultFOTAAckTimeout
	}
	if c.FOTA.Mode != 0 && c.FOTA.Mode != 1 {
		return fmt.Errorf("FOTA.Mode 取值无效: %d (应为 0 或 1)", c.FOTA.Mode)
	}
	if c.FOTA.TimeoutSec <= 0 {
		c.FOTA.TimeoutSec = DefaultFOTATimeoutSec
	}
	return nil
}
