// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package game

import (
	"io"
	"os"
	"strings"
)

// MoveCommentPrefix starts a comment which runs to the end of its line in a
// move list.
const MoveCommentPrefix = "#"

// ReadMoveList reads a move list file for scripted play.
func ReadMoveList(path string) ([]string, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseMoveList(string(file)), nil
}

// ReadMoveListFrom is like ReadMoveList but reads from r.
func ReadMoveListFrom(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return ParseMoveList(string(data)), nil
}

// ParseMoveList splits a move list into its move strings. Moves are
// separated by whitespace or newlines, comments are dropped, and move
// number markers like "1." or "12..." are skipped.
func ParseMoveList(list string) []string {
	var moves []string

	for _, line := range strings.Split(list, "\n") {
		if i := strings.Index(line, MoveCommentPrefix); i >= 0 {
			line = line[:i]
		}

		for _, token := range strings.Fields(line) {
			if strings.HasSuffix(token, ".") {
				continue
			}

			moves = append(moves, token)
		}
	}

	return moves
}
