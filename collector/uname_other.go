//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package collector

func kernelBuildVersion() string { return "" }
