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

package config

// perftConfiguration holds the defaults a perft run falls back to when
// the caller (CLI flags or a perftree invocation) doesn't override them.
type perftConfiguration struct {
	DefaultDepth       int
	DefaultFen         string
	MoveBufferCapacity int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Perft.DefaultDepth = 5
	Settings.Perft.DefaultFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	Settings.Perft.MoveBufferCapacity = 256
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupPerft() {
	if Settings.Perft.DefaultDepth <= 0 {
		Settings.Perft.DefaultDepth = 5
	}
	if Settings.Perft.DefaultFen == "" {
		Settings.Perft.DefaultFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	}
	if Settings.Perft.MoveBufferCapacity <= 0 {
		Settings.Perft.MoveBufferCapacity = 256
	}
}
