package structs

// StackConfig 栈配置
type StackConfig struct {
	Capacity int  `default:"10"`  // 容量
	Sentinel int  `default:"-99"` // 空槽位占位值
	Strict   bool `default:"false"`
}

// Config 配置文件结构
type Config struct {
	Version    int32
	Stack      StackConfig
	ScriptPath string `default:""` // 演示脚本路径，为空时使用内置脚本
}
