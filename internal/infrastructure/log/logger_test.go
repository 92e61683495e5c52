package log

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/mdvault/backend/internal/infrastructure/log/handler"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo}, // 默认值
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewConfigFromEnv(t *testing.T) {
	// 保存原始环境变量
	oldLogLevel := os.Getenv("LOG_LEVEL")
	oldLogFormat := os.Getenv("LOG_FORMAT")
	oldEnv := os.Getenv("ENV")

	defer func() {
		// 恢复环境变量
		if oldLogLevel != "" {
			os.Setenv("LOG_LEVEL", oldLogLevel)
		} else {
			os.Unsetenv("LOG_LEVEL")
		}
		if oldLogFormat != "" {
			os.Setenv("LOG_FORMAT", oldLogFormat)
		} else {
			os.Unsetenv("LOG_FORMAT")
		}
		if oldEnv != "" {
			os.Setenv("ENV", oldEnv)
		} else {
			os.Unsetenv("ENV")
		}
	}()

	t.Run("default config", func(t *testing.T) {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("LOG_FORMAT")
		os.Unsetenv("ENV")

		cfg := NewConfigFromEnv()

		if cfg.Level != "info" {
			t.Errorf("expected default level info, got %s", cfg.Level)
		}
		if cfg.Format != "console" {
			t.Errorf("expected default format console, got %s", cfg.Format)
		}
	})

	t.Run("custom config", func(t *testing.T) {
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("LOG_FORMAT", "json")

		cfg := NewConfigFromEnv()

		if cfg.Level != "debug" {
			t.Errorf("expected level debug, got %s", cfg.Level)
		}
		if cfg.Format != "json" {
			t.Errorf("expected format json, got %s", cfg.Format)
		}
	})

	t.Run("development mode", func(t *testing.T) {
		os.Setenv("ENV", "development")
		os.Setenv("LOG_LEVEL", "error") // 应该被覆盖

		cfg := NewConfigFromEnv()

		// 开发环境应该覆盖为 debug
		if cfg.Level != "debug" {
			t.Errorf("expected debug in development, got %s", cfg.Level)
		}
		if cfg.Format != "console" {
			t.Errorf("expected console in development, got %s", cfg.Format)
		}
		if !cfg.AddSource {
			t.Error("expected AddSource true in development")
		}
	})
}

func TestInit(t *testing.T) {
	// 临时设置环境变量
	oldLevel := os.Getenv("LOG_LEVEL")
	oldFormat := os.Getenv("LOG_FORMAT")
	defer func() {
		if oldLevel != "" {
			os.Setenv("LOG_LEVEL", oldLevel)
		} else {
			os.Unsetenv("LOG_LEVEL")
		}
		if oldFormat != "" {
			os.Setenv("LOG_FORMAT", oldFormat)
		} else {
			os.Unsetenv("LOG_FORMAT")
		}
	}()

	t.Run("init with defaults", func(t *testing.T) {
		Init(nil)

		logger := GetLogger()
		if logger == nil {
			t.Error("expected non-nil logger")
		}
	})

	t.Run("init with custom config", func(t *testing.T) {
		os.Setenv("LOG_LEVEL", "debug")
		cfg := NewConfigFromEnv()

		Init(cfg)

		if !IsDebugMode() {
			t.Error("expected debug mode")
		}
	})
}

func TestModuleLoggerOutput(t *testing.T) {
	// 验证模块信息出现在控制台输出前缀中
	var buf bytes.Buffer
	h := handler.NewConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h).With(
		slog.String("module", "watcher"),
		slog.String("component", "file_watcher"),
	)

	logger.Info("test message")

	out := buf.String()
	if !strings.Contains(out, "test message") {
		t.Error("expected log message in output")
	}
	if !strings.Contains(out, "[watcher/file_watcher]") {
		t.Errorf("expected module prefix in output, got %q", out)
	}
}

func TestJSONHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	h := handler.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("service", "mdvault-backend")}))

	logger.Info("json message", "key", "value")

	out := buf.String()
	for _, want := range []string{`"msg":"json message"`, `"service":"mdvault-backend"`, `"key":"value"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output, got %q", want, out)
		}
	}

	// Debug 低于配置级别，应被过滤
	if h.Enabled(nil, slog.LevelDebug) {
		t.Error("expected debug to be disabled at info level")
	}
}
