package config

import (
	"encoding/json"
	"os"

	"github.com/cxykevin/bstack/config/structs"
	"github.com/cxykevin/bstack/internal/configutil"
	"github.com/cxykevin/bstack/product"
)

// GlobalConfig 配置文件对象
var GlobalConfig = &structs.Config{}

const defaultConfigPath = "~/.config/bstack/config.json"
const envConfigName = "BSTACK_CONFIG_PATH"

var configPath string

func defaults() *structs.Config {
	cfg := structs.BuildDefault(structs.Config{})
	cfg.Version = product.VersionID
	return &cfg
}

// Load 加载配置文件，文件不存在或无法解析时写入默认配置
func Load() {
	GlobalConfig = defaults()
	configPath = configutil.Resolve(envConfigName, defaultConfigPath)

	if err := configutil.EnsureParent(configPath); err != nil {
		// 目录创建失败，使用默认配置
		return
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// 非不存在错误时备份旧文件
		if !os.IsNotExist(err) {
			if _, statErr := os.Stat(configPath); statErr == nil {
				os.Rename(configPath, configPath+".bak")
			}
		}
		Save()
		return
	}

	if err := json.Unmarshal(data, GlobalConfig); err != nil {
		GlobalConfig = defaults()
		Save()
		return
	}
	if GlobalConfig.Stack.Capacity <= 0 {
		GlobalConfig.Stack.Capacity = defaults().Stack.Capacity
	}
}

// Save 保存配置文件
func Save() {
	if configPath == "" {
		configPath = configutil.Resolve(envConfigName, defaultConfigPath)
	}
	if err := configutil.EnsureParent(configPath); err != nil {
		return
	}

	data, err := json.MarshalIndent(GlobalConfig, "", "  ")
	if err != nil {
		return
	}
	os.WriteFile(configPath, data, 0644)
}

// Path 返回当前使用的配置文件路径
func Path() string {
	return configPath
}
