//
// chesscore - move generation and perft engine
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line. The
// functions return Logger instances preconfigured with the necessary
// backends and formatters.
//
// Both loggers write to stderr rather than stdout: stdout is reserved
// for the perftree wire protocol (a "<uci move> <count>" line per reply
// plus a blank line and total), and a log line interleaved with it would
// corrupt the output a driving perftree process parses.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/kallisti-dev/chesscore/internal/config"
)

var (
	standardLog *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns an instance of a standard Logger preconfigured with a
// "normal" logging format (time - file - level). It always logs to
// stderr; if config.Settings.Log.Path is set, it additionally logs to
// that file.
func GetLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stderr, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	stderrBackEnd := logging.AddModuleLevel(backend1Formatter)
	stderrBackEnd.SetLevel(logging.Level(config.LogLevel), "")

	if config.Settings.Log.Path == "" {
		standardLog.SetBackend(stderrBackEnd)
		return standardLog
	}

	logFile, err := os.OpenFile(config.Settings.Log.Path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("log file could not be opened, logging to stderr only:", err)
		standardLog.SetBackend(stderrBackEnd)
		return standardLog
	}
	backend2 := logging.NewLogBackend(logFile, "", log.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, standardFormat)
	fileBackEnd := logging.AddModuleLevel(backend2Formatter)
	fileBackEnd.SetLevel(logging.Level(config.LogLevel), "")

	standardLog.SetBackend(logging.SetBackend(stderrBackEnd, fileBackEnd))
	return standardLog
}

// GetTestLog returns an instance of a standard Logger preconfigured with
// a stderr backend, for use from test code.
func GetTestLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stderr, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	standardBackEnd := logging.AddModuleLevel(backend1Formatter)
	standardBackEnd.SetLevel(logging.DEBUG, "")
	testLog.SetBackend(standardBackEnd)
	return testLog
}
