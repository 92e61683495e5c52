package monitor

// StatusDTO 监控状态响应
type StatusDTO struct {
	VaultDir string   `json:"vaultDir"`
	Watching bool     `json:"watching"`
	Suffixes []string `json:"suffixes"`
}
