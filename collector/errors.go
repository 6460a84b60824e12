package collector

import "errors"

// Readers wrap these sentinels so callers can classify failures with
// errors.Is. GPU unavailability has no sentinel: it yields zero GPUs.
var (
	// ErrOSQuery means the OS metrics subsystem could not be queried.
	ErrOSQuery = errors.New("os metrics query failed")

	// ErrProfileUnavailable means host identity facts could not be read.
	ErrProfileUnavailable = errors.New("system profile unavailable")

	// ErrCPUStatsUnavailable means CPU frequency is not reported on this
	// platform.
	ErrCPUStatsUnavailable = errors.New("cpu stats unavailable")

	// ErrDiskEnumeration means mounted partitions could not be listed.
	ErrDiskEnumeration = errors.New("disk partitions could not be enumerated")

	// errGPUDriverUnavailable is returned by GPU providers when the
	// vendor tooling is absent.
	errGPUDriverUnavailable = errors.New("gpu driver tooling unavailable")
)
