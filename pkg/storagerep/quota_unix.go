//go:build unix

package storagerep

import (
	"syscall"

	"github.com/pkg/errors"
)

func filesystemSize(path string) (int64, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, errors.WithStack(err)
	}
	return int64(stat.Blocks) * int64(stat.Bsize), nil //nolint:unconvert
}
