package vulkan

// Opaque handles handed out by a Driver. Their values only mean something to
// the driver that issued them.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
)

const (
	ExtDebugReportExtensionName = "VK_EXT_debug_report"
	KhrSwapchainExtensionName   = "VK_KHR_swapchain"
)

type ExtensionProperties struct {
	ExtensionName string
	SpecVersion   uint32
}

type LayerProperties struct {
	LayerName             string
	SpecVersion           Version
	ImplementationVersion uint32
	Description           string
}

type PhysicalDeviceProperties struct {
	APIVersion    Version
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	DeviceType    PhysicalDeviceType
	DeviceName    string
}

type MemoryHeap struct {
	Size  uint64
	Flags MemoryHeapFlags
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

// PhysicalDeviceMemoryProperties holds only the populated heaps and types;
// the slice lengths are the driver's heap and type counts.
type PhysicalDeviceMemoryProperties struct {
	MemoryTypes []MemoryType
	MemoryHeaps []MemoryHeap
}

type Extent3D struct {
	Width, Height, Depth uint32
}

type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

// Feature is a single boolean device feature, named after its field in
// VkPhysicalDeviceFeatures (e.g. "GeometryShader").
type Feature struct {
	Name    string
	Enabled bool
}

// PhysicalDeviceFeatures lists every feature in driver struct order.
type PhysicalDeviceFeatures []Feature

// EnabledNames returns the names of the enabled features.
func (f PhysicalDeviceFeatures) EnabledNames() []string {
	var names []string
	for _, ft := range f {
		if ft.Enabled {
			names = append(names, ft.Name)
		}
	}
	return names
}

type InstanceCreateInfo struct {
	EnabledExtensionNames []string
}

type DeviceQueueCreateInfo struct {
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

type DeviceCreateInfo struct {
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledExtensionNames []string
	EnabledFeatures       PhysicalDeviceFeatures
}
