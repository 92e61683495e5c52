package watcher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mdvault/backend/internal/domain/events"
	"github.com/mdvault/backend/internal/infrastructure/log"
)

// WatchConfig FileWatcher 配置
type WatchConfig struct {
	// VaultDir 被监听的 vault 根目录（递归）
	VaultDir string
}

// FileWatcher vault 目录监听会话
// 一个实例对应一个监听会话；Start 成功后会话持续到进程退出，
// 没有停止接口。允许为相同或不同的根目录创建多个独立实例
type FileWatcher struct {
	config   WatchConfig
	eventBus events.EventBus
	logger   *slog.Logger

	mu       sync.Mutex
	watching bool
}

// NewFileWatcher 创建文件监听器
func NewFileWatcher(config WatchConfig, eventBus events.EventBus) *FileWatcher {
	return &FileWatcher{
		config:   config,
		eventBus: eventBus,
		logger:   log.NewModuleLogger("watcher", "file_watcher"),
	}
}

// VaultDir 返回被监听的根目录
func (fw *FileWatcher) VaultDir() string {
	return fw.config.VaultDir
}

// IsWatching 返回会话是否已启动
func (fw *FileWatcher) IsWatching() bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.watching
}

// Start 注册递归监听并启动消费协程
// 这是唯一的同步失败路径：目录不存在、无权限或系统监听资源耗尽时
// 返回描述性错误，此时不会留下任何协程或监听注册。
// 成功后底层通知经由桥进入唯一的消费协程，监听句柄由该协程独占
func (fw *FileWatcher) Start() error {
	info, err := os.Stat(fw.config.VaultDir)
	if err != nil {
		return fmt.Errorf("vault 目录不可用: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault 路径不是目录: %s", fw.config.VaultDir)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("创建文件监听器失败: %w", err)
	}

	if err := addDirRecursive(w, fw.config.VaultDir); err != nil {
		_ = w.Close()
		return fmt.Errorf("注册目录监听失败: %w", err)
	}

	fw.logger.Info("Starting file watcher",
		"vault_dir", fw.config.VaultDir,
	)

	b := newBridge()
	go fw.forwardLoop(w, b)
	go fw.consumeLoop(w, b)

	fw.mu.Lock()
	fw.watching = true
	fw.mu.Unlock()

	return nil
}

// addDirRecursive 递归注册目录监听
// 根目录注册失败会中止启动；子目录注册失败只记录调试日志（尽力而为）
func addDirRecursive(w *fsnotify.Watcher, root string) error {
	if err := w.Add(root); err != nil {
		return err
	}

	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // 忽略无法访问的目录
		}
		if info.IsDir() && path != root {
			_ = w.Add(path)
		}
		return nil
	})
}

// forwardLoop 生产者侧：把底层通知搬入桥
// 运行在独立协程，入桥永不阻塞底层通知通道；
// 底层通知通道关闭后关闭桥的入口并退出
func (fw *FileWatcher) forwardLoop(w *fsnotify.Watcher, b *bridge) {
	fsEvents := w.Events
	fsErrors := w.Errors

	for {
		select {
		case event, ok := <-fsEvents:
			if !ok {
				close(b.in)
				return
			}
			b.in <- fromFsnotify(event)

		case err, ok := <-fsErrors:
			if !ok {
				fsErrors = nil
				continue
			}
			// 运行期错误按约定静默丢弃，不上报、不重试、不终止会话
			fw.logger.Debug("Watch error dropped", "error", err)
		}
	}
}

// consumeLoop 唯一的消费协程
// 独占监听句柄与桥的接收端，按入队顺序处理通知：
// 维护递归监听、分类过滤、发布领域事件。桥关闭后释放句柄并退出
func (fw *FileWatcher) consumeLoop(w *fsnotify.Watcher, b *bridge) {
	for raw := range b.out {
		fw.maintainWatches(w, raw)

		event, ok := Classify(raw)
		if !ok {
			continue
		}
		fw.eventBus.Publish(event)
	}

	_ = w.Close()
}

// maintainWatches 把新创建的子目录加入监听
// fsnotify 不支持递归监听，需要在消费路径上补注册
func (fw *FileWatcher) maintainWatches(w *fsnotify.Watcher, raw RawNotification) {
	if raw.Kind != RawCreate {
		return
	}

	for _, path := range raw.Paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		if err := w.Add(path); err != nil {
			fw.logger.Debug("Failed to add directory to watch",
				"path", path,
				"error", err,
			)
		}
	}
}
