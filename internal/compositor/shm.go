package compositor

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// shmBuffer is an anonymous shared-memory pixel buffer passed to the
// compositor by fd.
type shmBuffer struct {
	fd     int
	data   []byte
	width  int
	height int
	stride int
}

func newShmBuffer(width, height int) (*shmBuffer, error) {
	stride := width * 4
	size := stride * height

	fd, err := unix.MemfdCreate("glint-shm", unix.MFD_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("memfd_create: %w", err)
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("ftruncate: %w", err)
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("mmap: %w", err)
	}

	return &shmBuffer{
		fd:     fd,
		data:   data,
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

func (b *shmBuffer) size() int { return b.stride * b.height }

func (b *shmBuffer) close() {
	if b.data != nil {
		unix.Munmap(b.data)
		b.data = nil
	}
	if b.fd >= 0 {
		unix.Close(b.fd)
		b.fd = -1
	}
}
