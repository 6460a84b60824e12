//go:build linux || darwin || freebsd || netbsd || openbsd

package collector

import "golang.org/x/sys/unix"

// kernelBuildVersion returns the uname version string, e.g.
// "#81-Ubuntu SMP Tue Nov 26 12:34:56 UTC 2024".
func kernelBuildVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Version[:])
}
