//go:build unix

package browse

import (
	"time"

	"golang.org/x/sys/unix"
)

// OSStatSource is a StatSource backed by unix.Stat, extracting the
// device/inode/uid/gid/link-count fields that os.Stat's FileInfo does
// not expose directly.
type OSStatSource struct{}

// Stat returns filesystem metadata for absPath.
func (OSStatSource) Stat(absPath string) (Stat, error) {
	var st unix.Stat_t
	if err := unix.Stat(absPath, &st); err != nil {
		return Stat{}, err
	}

	return Stat{
		Size:    st.Size,
		NLink:   uint64(st.Nlink),
		ModTime: time.Unix(st.Mtim.Sec, st.Mtim.Nsec),
		AccTime: time.Unix(st.Atim.Sec, st.Atim.Nsec),
		CreTime: time.Unix(st.Ctim.Sec, st.Ctim.Nsec),
		Dev:     uint64(st.Dev),
		Ino:     st.Ino,
		UID:     st.Uid,
		GID:     st.Gid,
		Blocks:  st.Blocks,
	}, nil
}
