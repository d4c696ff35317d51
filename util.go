package batchdl

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
)

const copyBufferSize = 32 * 1024

// HashMD5 returns the hex MD5 digest of data.
func HashMD5(data []byte) string {
	hasher := md5.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// copyBuffer copies src to dst, reporting the running byte count after
// every write.
func copyBuffer(dst io.Writer, src io.Reader, total int64, progress ProgressFunc) (written int64, err error) {
	buf := make([]byte, copyBufferSize)

	for {
		nr, er := src.Read(buf)
		if nr > 0 {
			nw, ew := dst.Write(buf[0:nr])
			if nw > 0 {
				written += int64(nw)
			}
			if ew != nil {
				err = ew
				break
			}
			if nr != nw {
				err = io.ErrShortWrite
				break
			}
			if progress != nil {
				progress(written, total)
			}
		}
		if er != nil {
			if er != io.EOF {
				err = er
			}
			break
		}
	}
	return written, err
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
