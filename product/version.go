// Package product 版本信息
package product

// Version 版本号
const Version = "0.1.0"

// VersionID 配置文件版本
const VersionID int32 = 1
