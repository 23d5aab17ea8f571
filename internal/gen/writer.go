package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile is an artifact produced by a compilation.
type GeneratedFile struct {
	// Path is where the file is written (e.g., "out/RobotMap.class").
	Path string
	// Content is the file data.
	Content []byte
}

// WriteFiles writes all generated files, creating parent directories as
// needed. Files are written in order; the first failure stops the run.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if err := WriteFile(file); err != nil {
			return err
		}
	}

	return nil
}

// WriteFile writes a single generated file, creating its directory if it
// doesn't exist. The content goes to a temporary file in the same directory
// first, so an existing artifact is never left half-written.
func WriteFile(file GeneratedFile) error {
	dir := filepath.Dir(file.Path)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(file.Path)+".*")
	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(file.Content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	if err := os.Rename(tmp.Name(), file.Path); err != nil {
		return fmt.Errorf("writing file %s: %w", file.Path, err)
	}

	return nil
}
