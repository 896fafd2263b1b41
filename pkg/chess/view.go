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

package chess

// ViewSquare maps a display cell to the board square shown in it when the
// board is viewed from the given player's side. Display file 0 is the left
// column and display rank 0 is the top row.
//
// From White's side the cell shows file 'a'+file and rank 8-rank, from
// Black's side file 'h'-file and rank rank+1.
func ViewSquare(file, rank int, perspective Player) Square {
	if perspective == Black {
		return NewSquare(BoardSize-1-file, rank)
	}

	return NewSquare(file, BoardSize-1-rank)
}
