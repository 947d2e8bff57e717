// Package vulkan is the boundary between vkinfo and the Vulkan loader. It
// mirrors the small part of the Vulkan 1.0 API the tool needs with plain Go
// types, so the collector can run against the real loader or an in-memory
// driver.
package vulkan

// Driver is the capability-query surface of a Vulkan implementation.
//
// Enumerations keep the two-call protocol of the C API: a call with a nil
// buffer stores the available count, a call with a buffer fills at most
// *count entries, stores the number written and returns Incomplete when more
// were available.
type Driver interface {
	EnumerateInstanceExtensionProperties(layerName string, count *uint32, props []ExtensionProperties) Result
	EnumerateInstanceLayerProperties(count *uint32, props []LayerProperties) Result
	CreateInstance(info *InstanceCreateInfo) (Instance, Result)
	DestroyInstance(instance Instance)

	EnumeratePhysicalDevices(instance Instance, count *uint32, gpus []PhysicalDevice) Result
	GetPhysicalDeviceProperties(gpu PhysicalDevice) PhysicalDeviceProperties
	GetPhysicalDeviceMemoryProperties(gpu PhysicalDevice) PhysicalDeviceMemoryProperties
	GetPhysicalDeviceFeatures(gpu PhysicalDevice) PhysicalDeviceFeatures
	GetPhysicalDeviceQueueFamilyProperties(gpu PhysicalDevice, count *uint32, props []QueueFamilyProperties)
	EnumerateDeviceLayerProperties(gpu PhysicalDevice, count *uint32, props []LayerProperties) Result
	EnumerateDeviceExtensionProperties(gpu PhysicalDevice, layerName string, count *uint32, props []ExtensionProperties) Result

	CreateDevice(gpu PhysicalDevice, info *DeviceCreateInfo) (Device, Result)
	DestroyDevice(device Device)
}
