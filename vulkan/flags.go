package vulkan

import "strings"

type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeOther PhysicalDeviceType = iota
	PhysicalDeviceTypeIntegratedGPU
	PhysicalDeviceTypeDiscreteGPU
	PhysicalDeviceTypeVirtualGPU
	PhysicalDeviceTypeCPU
)

var deviceTypeNames = [...]string{
	PhysicalDeviceTypeOther:         "OTHER",
	PhysicalDeviceTypeIntegratedGPU: "INTEGRATED_GPU",
	PhysicalDeviceTypeDiscreteGPU:   "DISCRETE_GPU",
	PhysicalDeviceTypeVirtualGPU:    "VIRTUAL_GPU",
	PhysicalDeviceTypeCPU:           "CPU",
}

func (t PhysicalDeviceType) String() string {
	if t < 0 || int(t) >= len(deviceTypeNames) {
		return "<UNKNOWN>"
	}
	return deviceTypeNames[t]
}

type MemoryHeapFlags uint32

const MemoryHeapDeviceLocalBit MemoryHeapFlags = 0x1

// String returns "DEVICE_LOCAL" for device-local heaps and "" otherwise.
func (f MemoryHeapFlags) String() string {
	if f&MemoryHeapDeviceLocalBit != 0 {
		return "DEVICE_LOCAL"
	}
	return ""
}

type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 0x1
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 0x2
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 0x4
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 0x8
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 0x10
)

var memoryPropertyNames = []struct {
	bit  MemoryPropertyFlags
	name string
}{
	{MemoryPropertyDeviceLocalBit, "DEVICE_LOCAL"},
	{MemoryPropertyHostVisibleBit, "HOST_VISIBLE"},
	{MemoryPropertyHostCoherentBit, "COHERENT"},
	{MemoryPropertyHostCachedBit, "CACHED"},
	{MemoryPropertyLazilyAllocatedBit, "LAZILY_ALLOCATED"},
}

// Names returns the symbolic names of the set bits in table order.
// Bits outside the table are ignored.
func (f MemoryPropertyFlags) Names() []string {
	var names []string
	for _, p := range memoryPropertyNames {
		if f&p.bit != 0 {
			names = append(names, p.name)
		}
	}
	return names
}

type QueueFlags uint32

const (
	QueueGraphicsBit      QueueFlags = 0x1
	QueueComputeBit       QueueFlags = 0x2
	QueueTransferBit      QueueFlags = 0x4
	QueueSparseBindingBit QueueFlags = 0x8
)

var queueFlagCodes = []struct {
	bit  QueueFlags
	code byte
	name string
}{
	{QueueGraphicsBit, 'G', "GRAPHICS"},
	{QueueComputeBit, 'C', "COMPUTE"},
	{QueueTransferBit, 'T', "TRANSFER"},
	{QueueSparseBindingBit, 'S', "SPARSE"},
}

// Code renders the flags as a fixed four character positional code,
// Graphics/Compute/Transfer/SparseBinding, with '_' for unset positions.
func (f QueueFlags) Code() string {
	code := make([]byte, len(queueFlagCodes))
	for i, q := range queueFlagCodes {
		code[i] = '_'
		if f&q.bit != 0 {
			code[i] = q.code
		}
	}
	return string(code)
}

// BitName names a single queue capability bit. Anything that is not exactly
// one of the four known bits renders as "UNKNOWN".
func (f QueueFlags) BitName() string {
	for _, q := range queueFlagCodes {
		if f == q.bit {
			return q.name
		}
	}
	return "UNKNOWN"
}

// String lists the name of every set bit, joined by '|'.
func (f QueueFlags) String() string {
	var names []string
	for bit := QueueFlags(1); bit != 0 && bit <= f; bit <<= 1 {
		if f&bit != 0 {
			names = append(names, bit.BitName())
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}
