package ffi

import (
	"errors"
	"fmt"
	"os"

	"github.com/gabapcia/walletcore/internal/wallet"
)

// CheckWritableDir fails with wallet.ErrFilesystemUnavailable unless dir
// exists, is a directory and accepts new files.
func CheckWritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s does not exist", wallet.ErrFilesystemUnavailable, dir)
		}
		return fmt.Errorf("%w: %w", wallet.ErrFilesystemUnavailable, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", wallet.ErrFilesystemUnavailable, dir)
	}

	probe, err := os.CreateTemp(dir, ".walletcore-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %s is not writable", wallet.ErrFilesystemUnavailable, dir)
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)

	return nil
}
