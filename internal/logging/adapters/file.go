package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"talexu-jobs/internal/logging/types"
)

// FileAdapter implements the LogAdapter interface for file output with
// size-based rotation
type FileAdapter struct {
	name   string
	config FileConfig
	file   *os.File
	size   int64
	mu     sync.Mutex
}

// FileConfig represents configuration for the file adapter
type FileConfig struct {
	FilePath   string `yaml:"file_path"`
	Format     string `yaml:"format"`      // json or text
	MaxSize    int64  `yaml:"max_size"`    // bytes before rotation, 0 disables
	MaxBackups int    `yaml:"max_backups"` // rotated files to keep
	CreateDirs bool   `yaml:"create_dirs"`
}

// NewFileAdapter creates a new file adapter and opens the target file
func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("file_path is required for file adapter")
	}
	if config.MaxBackups <= 0 {
		config.MaxBackups = 5
	}

	if config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	a := &FileAdapter{name: name, config: config}
	if err := a.open(); err != nil {
		return nil, err
	}
	return a, nil
}

// Write writes a log entry to the file, rotating first if the size limit
// would be exceeded
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var output string
	var err error

	switch strings.ToLower(a.config.Format) {
	case "text":
		output = formatText(entry)
	default:
		output, err = formatJSON(entry)
	}
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	line := output + "\n"
	if a.config.MaxSize > 0 && a.size+int64(len(line)) > a.config.MaxSize {
		if err := a.rotate(); err != nil {
			return err
		}
	}

	n, err := a.file.WriteString(line)
	a.size += int64(n)
	return err
}

// Close flushes and closes the underlying file
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}

// Name returns the name of the adapter
func (a *FileAdapter) Name() string {
	return a.name
}

func (a *FileAdapter) open() error {
	file, err := os.OpenFile(a.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", a.config.FilePath, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}

	a.file = file
	a.size = info.Size()
	return nil
}

// rotate shifts existing backups up by one index and reopens a fresh file
func (a *FileAdapter) rotate() error {
	if err := a.file.Close(); err != nil {
		return err
	}

	for i := a.config.MaxBackups - 1; i >= 1; i-- {
		from := fmt.Sprintf("%s.%d", a.config.FilePath, i)
		to := fmt.Sprintf("%s.%d", a.config.FilePath, i+1)
		if _, err := os.Stat(from); err == nil {
			os.Rename(from, to)
		}
	}
	os.Rename(a.config.FilePath, a.config.FilePath+".1")

	return a.open()
}
