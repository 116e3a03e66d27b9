// Package configutil 配置与日志共用的路径工具
package configutil

import (
	"os"
	"path/filepath"
)

// ExpandPath 展开路径中的 ~ 和环境变量
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = homeDir + path[1:]
		}
	}
	return os.ExpandEnv(path)
}

// Resolve 读取环境变量 env，为空时使用 fallback，并展开路径
func Resolve(env string, fallback string) string {
	path := fallback
	if v := os.Getenv(env); v != "" {
		path = v
	}
	return ExpandPath(path)
}

// EnsureParent 确保文件所在目录存在
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
