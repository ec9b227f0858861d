// Copyright 2026 approx Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log holds the logger used for comparison diagnostics. The default
// logger discards everything so importing tests stay quiet.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Logger returns the current logger.
func Logger() *zap.Logger {
	return logger
}

// SetLogger replaces the current logger.
func SetLogger(l *zap.Logger) {
	logger = l
}

// SetDevelopmentLogger switches to console output at debug level, useful
// when tracing why a tolerance assertion failed.
func SetDevelopmentLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.999999")
	var err error
	logger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}
