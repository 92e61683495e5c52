// Package config 提供应用配置
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName 数据目录下的配置文件名
const ConfigFileName = "config.yaml"

// Config 应用配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	Vault     VaultConfig     `yaml:"vault"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// HTTPPort 固定端口，用于单例锁
	HTTPPort string `yaml:"http_port"`
}

// WebSocketConfig WebSocket 配置
type WebSocketConfig struct {
	ReadBufferSize  int `yaml:"read_buffer_size"`
	WriteBufferSize int `yaml:"write_buffer_size"`
}

// VaultConfig vault 配置
type VaultConfig struct {
	// Dir vault 根目录，文件监控递归监听此目录
	// 留空表示使用默认位置 ~/mdvault
	Dir string `yaml:"dir"`
}

// NewConfig 创建配置
// 先取默认值，再用数据目录下的 config.yaml 覆盖（文件不存在时忽略）
func NewConfig() *Config {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort: ":18790",
		},
		WebSocket: WebSocketConfig{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		Vault: VaultConfig{
			Dir: defaultVaultDir(),
		},
	}

	cfg.loadFromFile(filepath.Join(GetDataDir(), ConfigFileName))

	return cfg
}

// defaultVaultDir 默认 vault 目录 ~/mdvault
func defaultVaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "mdvault"
	}
	return filepath.Join(homeDir, "mdvault")
}

// loadFromFile 从 YAML 文件加载配置覆盖默认值
// 读取或解析失败时保持默认值
func (c *Config) loadFromFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = yaml.Unmarshal(data, c)
}

// NewServerConfig 创建服务器配置
func NewServerConfig(cfg *Config) *ServerConfig {
	return &cfg.Server
}

// NewWebSocketConfig 创建 WebSocket 配置
func NewWebSocketConfig(cfg *Config) *WebSocketConfig {
	return &cfg.WebSocket
}

// NewVaultConfig 创建 vault 配置
func NewVaultConfig(cfg *Config) *VaultConfig {
	return &cfg.Vault
}
