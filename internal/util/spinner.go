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

package util

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// SpinnerCharSet is the spinner.CharSets index used by every spinner.
const SpinnerCharSet = 31

// Progress counts the finished steps of a task running behind a spinner.
type Progress struct {
	done  atomic.Int64
	total int
}

// Step marks one more step as finished.
func (progress *Progress) Step() {
	progress.done.Add(1)
}

func (progress *Progress) String() string {
	return fmt.Sprintf("%d/%d", progress.done.Load(), progress.total)
}

// Spin runs work while showing a spinner followed by the task's progress on
// w. Nothing is written to w unless it is a terminal.
func Spin(w io.Writer, task string, total int, work func(progress *Progress) error) error {
	progress := &Progress{total: total}

	file, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(file.Fd()) {
		return work(progress)
	}

	s := spinner.New(spinner.CharSets[SpinnerCharSet], 100*time.Millisecond, spinner.WithWriterFile(file))
	s.PreUpdate = func(s *spinner.Spinner) {
		s.Suffix = fmt.Sprintf(" %s %s", task, progress)
	}

	fmt.Fprint(file, "\x1b[33m") // Make the outputs yellow.
	s.Start()                    // Start the ~working~ spinner.

	err := work(progress)

	s.Stop()                    // Stop the ~working~ spinner.
	fmt.Fprint(file, "\x1b[0m") // Reset the terminal's color.

	return err
}
