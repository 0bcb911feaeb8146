package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
	"github.com/hiro2620/sphero-controll/internal/ui"
)

// LocalSource serves application files from a directory on the host,
// typically the checkout the provisioner was invoked from
type LocalSource struct {
	dir   string
	files []string
}

// NewLocalSource creates a source over a local directory
func NewLocalSource(dir string, files []string) ports.ArtifactSource {
	return &LocalSource{dir: dir, files: files}
}

// Stage returns the source directory itself; nothing is copied
func (s *LocalSource) Stage(ctx context.Context) (string, error) {
	abs, err := filepath.Abs(s.dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve artifact source %s: %w", s.dir, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("artifact source not found: %s: %w", abs, err)
	}
	return abs, nil
}

// Place copies the configured files into the install directory
func (s *LocalSource) Place(ctx context.Context, stagedDir, installDir string) error {
	return placeFiles(stagedDir, installDir, s.files)
}

// Describe names the source for log output
func (s *LocalSource) Describe() string {
	return s.dir
}

// placeFiles creates the install directory if absent and copies each
// file into it, overwriting existing copies. Shared by both sources.
func placeFiles(srcDir, installDir string, files []string) error {
	if err := os.MkdirAll(installDir, 0755); err != nil {
		return fmt.Errorf("failed to create install directory %s: %w", installDir, err)
	}

	for _, name := range files {
		src := filepath.Join(srcDir, name)
		dst := filepath.Join(installDir, filepath.Base(name))

		ui.SubStep("Copying %s", dst)
		if err := copyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", dst, err)
	}
	return out.Close()
}
