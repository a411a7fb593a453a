package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileLogger returns a logger that writes JSON lines at or above level to path, rotating the file
// once it reaches 100MB and keeping two compressed backups.
func NewFileLogger(name, path string, level Level) Logger {
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100,
		MaxBackups: 2,
		Compress:   true,
	}
	encoderConfig := NewLoggerConfig().EncoderConfig
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	atomic := zap.NewAtomicLevelAt(level.AsZap())
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(sink), atomic)
	return &impl{name: name, level: atomic, sugar: zap.New(core, zap.AddCaller()).Sugar().Named(name)}
}
