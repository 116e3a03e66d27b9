// Package log 日志模块
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cxykevin/bstack/internal/configutil"
)

const defaultLogPath = "~/.config/bstack/log.log"
const envLogName = "BSTACK_LOG_PATH"

const channelSize = 1000

// Logger 日志对象
var Logger *log.Logger

var (
	initOnce   sync.Once
	logChannel chan logMessage
	pending    sync.WaitGroup
	flushMu    sync.Mutex
	dropped    uint64
	isShutdown uint32
)

type logMessage struct {
	level      string
	moduleName string
	message    string
}

var escaper = strings.NewReplacer("\\", "\\\\", "\n", "\\n", "\r", "\\r", "\t", "\\t")

// Load 初始化日志，打开失败时丢弃输出
func Load() {
	initOnce.Do(func() {
		Logger = log.New(openLogFile(), "", log.LstdFlags)
		logChannel = make(chan logMessage, channelSize)
		go logWorker()
		(&LogsObj{moduleName: "log"}).Info("log inited")
	})
}

func openLogFile() io.Writer {
	path := configutil.Resolve(envLogName, defaultLogPath)
	if err := configutil.EnsureParent(path); err != nil {
		return io.Discard
	}
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return io.Discard
	}
	return file
}

func logWorker() {
	for msg := range logChannel {
		Logger.Printf("[%s][%s] %s", msg.level, msg.moduleName, msg.message)
		pending.Done()
	}
}

func flushLogs() {
	flushMu.Lock()
	defer flushMu.Unlock()
	pending.Wait()
}

// Shutdown 写完剩余日志，之后的日志同步写入
func Shutdown() {
	if Logger == nil || !atomic.CompareAndSwapUint32(&isShutdown, 0, 1) {
		return
	}
	flushLogs()
	close(logChannel)
}

// Dropped 返回因通道已满被丢弃的日志条数
func Dropped() uint64 {
	return atomic.LoadUint64(&dropped)
}

// LogsObj 模块日志对象
type LogsObj struct {
	moduleName string
}

func (l *LogsObj) log(level string, msg string, v ...any) {
	str := escaper.Replace(fmt.Sprintf(msg, v...))

	if atomic.LoadUint32(&isShutdown) == 1 {
		l.write(level, str)
		return
	}

	flushMu.Lock()
	pending.Add(1)
	flushMu.Unlock()

	select {
	case logChannel <- logMessage{level: level, moduleName: l.moduleName, message: str}:
	default:
		pending.Done()
		n := atomic.AddUint64(&dropped, 1)
		l.write("WARN", fmt.Sprintf("log channel full, drop log (total dropped: %d)", n))
	}
}

func (l *LogsObj) write(level string, str string) {
	Logger.Printf("[%s][%s] %s", level, l.moduleName, str)
}

// Info 打印日志
func (l *LogsObj) Info(msg string, v ...any) {
	l.log("INFO", msg, v...)
}

// Warn 打印警告
func (l *LogsObj) Warn(msg string, v ...any) {
	l.log("WARN", msg, v...)
}

// Error 打印错误，先写完排队中的日志再同步写入
func (l *LogsObj) Error(msg string, v ...any) {
	if atomic.LoadUint32(&isShutdown) == 0 {
		flushLogs()
	}
	l.write("ERROR", escaper.Replace(fmt.Sprintf(msg, v...)))
}

// Debug 打印调试
func (l *LogsObj) Debug(msg string, v ...any) {
	l.log("DEBUG", msg, v...)
}

// New 创建日志对象
func New(moduleName string) *LogsObj {
	Load()
	return &LogsObj{moduleName: moduleName}
}
