//go:build !unix

package storagerep

func filesystemSize(string) (int64, error) {
	return 0, errQuotaUnsupported
}
