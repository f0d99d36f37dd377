// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package boundconf

import (
	"io"
	"io/fs"
	"sync"
)

// DefaultPath is the source location [NewBuilder] reads when no
// [WithSource] option is given, relative to the working directory.
const DefaultPath = "src/main/resources/config.yml"

// FileReader is an io.ReadCloser that handles opening a file for
// reading automatically. The open is attempted once, on first Read, so
// an absent file surfaces as [fs.ErrNotExist] from Read rather than
// from construction.
type FileReader struct {
	path string

	openOnce sync.Once
	fsys     fs.FS
	file     io.ReadCloser
	openErr  error
}

// NewFileReader configures a FileReader.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{
		path: path,
		fsys: fsys,
	}
}

// Read implements the io.Reader interface.
func (r *FileReader) Read(b []byte) (int, error) {
	r.openOnce.Do(func() {
		r.file, r.openErr = r.fsys.Open(r.path)
	})
	if r.openErr != nil {
		return 0, r.openErr
	}
	return r.file.Read(b)
}

// Close implements the io.Closer interface. Closing before the
// underlying file has been opened is a no-op.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}
