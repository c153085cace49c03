package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AuditEventType names a state-changing event worth keeping a trail of.
type AuditEventType string

const (
	AuditPush    AuditEventType = "push"
	AuditPop     AuditEventType = "pop"
	AuditEnqueue AuditEventType = "enqueue"
	AuditDequeue AuditEventType = "dequeue"
	AuditDrop    AuditEventType = "drop"
)

// AuditLogger writes one JSON line per container mutation to .kata/logs/audit.jsonl.
type AuditLogger struct {
	log  *zap.Logger
	file *os.File
}

var (
	auditLogger *AuditLogger
	auditMu     sync.Mutex
)

// InitAudit opens the audit trail. It is a no-op outside debug mode.
func InitAudit() error {
	auditMu.Lock()
	defer auditMu.Unlock()

	if !IsDebugMode() || logsDir == "" {
		return nil
	}
	if auditLogger != nil {
		return nil
	}

	path := filepath.Join(logsDir, "audit.jsonl")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}

	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.EpochMillisTimeEncoder
	ec.TimeKey = "ts"
	ec.MessageKey = "event"
	core := zapcore.NewCore(zapcore.NewJSONEncoder(ec), zapcore.AddSync(file), zapcore.InfoLevel)
	auditLogger = &AuditLogger{log: zap.New(core), file: file}
	return nil
}

// CloseAudit flushes and closes the audit trail.
func CloseAudit() {
	auditMu.Lock()
	defer auditMu.Unlock()
	if auditLogger == nil {
		return
	}
	_ = auditLogger.log.Sync()
	auditLogger.file.Close()
	auditLogger = nil
}

// Audit returns the active audit logger, or a no-op one.
func Audit() *AuditLogger {
	auditMu.Lock()
	defer auditMu.Unlock()
	if auditLogger == nil {
		return &AuditLogger{log: zap.NewNop()}
	}
	return auditLogger
}

// ContainerOp records a mutation of a named container.
func (a *AuditLogger) ContainerOp(event AuditEventType, name, kind, value string, err error) {
	fields := []zap.Field{
		zap.String("container", name),
		zap.String("kind", kind),
		zap.Bool("success", err == nil),
	}
	if value != "" {
		fields = append(fields, zap.String("value", value))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	a.log.Info(string(event), fields...)
}
