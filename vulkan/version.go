package vulkan

import "fmt"

// Version is a packed API, layer or driver version: 10 bits major,
// 10 bits minor, 12 bits patch.
type Version uint32

// MakeVersion packs the three components. Out of range components are masked.
func MakeVersion(major, minor, patch uint32) Version {
	return Version((major&0x3FF)<<22 | (minor&0x3FF)<<12 | patch&0xFFF)
}

func (v Version) Major() uint32 {
	return (uint32(v) >> 22) & 0x3FF
}

func (v Version) Minor() uint32 {
	return (uint32(v) >> 12) & 0x3FF
}

func (v Version) Patch() uint32 {
	return uint32(v) & 0xFFF
}

// String renders the version as major.minor.patch.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
