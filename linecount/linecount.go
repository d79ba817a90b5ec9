// Package linecount counts source lines under a directory tree.
package linecount

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Count returns the number of lines across every file below root whose name
// ends in ext.
func Count(root, ext string) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ext {
			return nil
		}
		n, err := countFile(path)
		if err != nil {
			return err
		}
		total += n
		return nil
	})
	return total, err
}

func countFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var (
		lines int
		last  byte = '\n'
		buf        = make([]byte, 32*1024)
	)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			lines += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	// A final line without a newline still counts.
	if last != '\n' {
		lines++
	}
	return lines, nil
}
