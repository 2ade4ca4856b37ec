//go:build unix

package fingerprint

import "golang.org/x/sys/unix"

// osVersion reports the kernel release from uname(2).
func osVersion() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "unknown"
	}
	return unix.ByteSliceToString(u.Release[:])
}
