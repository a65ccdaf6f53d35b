package utils

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// textExtensions lists the file extensions treated as ingestible documents
// inside an uploaded archive.
var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// ArchiveFile is one document extracted from an uploaded ZIP archive.
type ArchiveFile struct {
	// Name is the base filename inside the archive, without directories.
	Name string

	// Content is the raw file body.
	Content []byte
}

// ExtractTextFilesFromZip reads every text document (.txt, .md, .markdown)
// out of the given ZIP archive bytes, recursing into directories. Hidden
// files and macOS resource-fork entries are skipped.
//
// Returns an error when the archive itself is unreadable; individual
// non-text entries are silently ignored.
func ExtractTextFilesFromZip(zipContent []byte) ([]ArchiveFile, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(zipContent), int64(len(zipContent)))
	if err != nil {
		return nil, fmt.Errorf("error opening zip archive: %w", err)
	}

	var files []ArchiveFile
	for _, entry := range zipReader.File {
		if entry.FileInfo().IsDir() {
			continue
		}

		name := path.Base(entry.Name)
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "__MACOSX") {
			continue
		}
		if !textExtensions[strings.ToLower(path.Ext(name))] {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("error opening archive entry %q: %w", entry.Name, err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("error reading archive entry %q: %w", entry.Name, err)
		}

		files = append(files, ArchiveFile{Name: name, Content: content})
	}

	return files, nil
}
