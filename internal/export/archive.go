package export

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Ensure makes the export tables available under dir. When the archive exists
// it is extracted into dir, overwriting earlier extractions. Without an
// archive, a directory that already holds watched.csv is accepted as is.
// Extracted reports whether the archive was unpacked.
func Ensure(archivePath, dir string) (extracted bool, err error) {
	if _, statErr := os.Stat(archivePath); statErr == nil {
		if err := Extract(archivePath, dir); err != nil {
			return false, err
		}
		return true, nil
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return false, fmt.Errorf("stat export archive: %w", statErr)
	}

	if _, statErr := os.Stat(filepath.Join(dir, WatchedFile)); statErr == nil {
		return false, nil
	}
	return false, fmt.Errorf("%w: %s (place your Letterboxd export ZIP there or extract it into %s)", ErrArchiveMissing, archivePath, dir)
}

// Extract unpacks every regular file of the zip archive into dir.
func Extract(archivePath, dir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open export archive: %w", err)
	}
	defer reader.Close()

	root, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve export dir: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	for _, file := range reader.File {
		target := filepath.Join(root, filepath.FromSlash(file.Name))
		if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %q escapes export dir", file.Name)
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", file.Name, err)
			}
			continue
		}
		if err := extractFile(file, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", file.Name, err)
	}
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", file.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("extract %s: %w", file.Name, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close %s: %w", target, err)
	}
	return nil
}
