package errorutil

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileOpError describes a failed operation on a config, log or input file
type FileOpError struct {
	Operation string
	Path      string
	Err       error
}

func (e *FileOpError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Operation, e.Path, e.Err)
}

func (e *FileOpError) Unwrap() error {
	return e.Err
}

func fileErr(operation, path string, err error) *FileOpError {
	return &FileOpError{Operation: operation, Path: path, Err: err}
}

// ValidateFileExists checks that filePath names an existing regular file
func ValidateFileExists(filePath, operation string) error {
	if filePath == "" {
		return fileErr(operation, filePath, errors.New("empty file path provided"))
	}

	info, err := os.Stat(filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fileErr(operation, filePath, fmt.Errorf("file not found: %w", err))
	case err != nil:
		return fileErr(operation, filePath, fmt.Errorf("cannot access file: %w", err))
	case info.IsDir():
		return fileErr(operation, filePath, errors.New("path is a directory, expected file"))
	}
	return nil
}

// ValidateFileReadable checks that filePath exists and can be opened
func ValidateFileReadable(filePath, operation string) error {
	if err := ValidateFileExists(filePath, operation); err != nil {
		return err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fileErr(operation, filePath, fmt.Errorf("cannot open file for reading: %w", err))
	}
	return file.Close()
}

// ValidateDirectory checks that dirPath is a directory, creating it when
// createIfMissing is set
func ValidateDirectory(dirPath, operation string, createIfMissing bool) error {
	if dirPath == "" {
		return fileErr(operation, dirPath, errors.New("empty directory path provided"))
	}

	info, err := os.Stat(dirPath)
	if errors.Is(err, fs.ErrNotExist) && createIfMissing {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fileErr(operation, dirPath, fmt.Errorf("failed to create directory: %w", err))
		}
		return nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fileErr(operation, dirPath, errors.New("directory not found"))
	case err != nil:
		return fileErr(operation, dirPath, fmt.Errorf("cannot access directory: %w", err))
	case !info.IsDir():
		return fileErr(operation, dirPath, errors.New("path exists but is not a directory"))
	}
	return nil
}

// SafeWriteFile writes data to filePath, creating its directory when asked
func SafeWriteFile(filePath string, data []byte, operation string, createDir bool) error {
	if createDir {
		if err := ValidateDirectory(filepath.Dir(filePath), operation, true); err != nil {
			return err
		}
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fileErr(operation, filePath, fmt.Errorf("failed to write file: %w", err))
	}
	return nil
}

// ReadLines returns the trimmed, non-blank lines of filePath. Lines starting
// with '#' are skipped.
func ReadLines(filePath, operation string) ([]string, error) {
	if err := ValidateFileReadable(filePath, operation); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fileErr(operation, filePath, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fileErr(operation, filePath, fmt.Errorf("failed to read file: %w", err))
	}
	return lines, nil
}
