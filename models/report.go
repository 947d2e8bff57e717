package models

import "gitlab.com/nunet/vkinfo/vulkan"

// InstanceReport holds the capabilities visible before any device is opened.
// LayerExtensions[i] lists the extensions provided by Layers[i].
type InstanceReport struct {
	Extensions      []vulkan.ExtensionProperties
	Layers          []vulkan.LayerProperties
	LayerExtensions [][]vulkan.ExtensionProperties
}

// DeviceReport holds everything gathered for one physical device. Its
// extension and layer lists follow the InstanceReport shape.
type DeviceReport struct {
	Properties      vulkan.PhysicalDeviceProperties
	Features        vulkan.PhysicalDeviceFeatures
	Memory          vulkan.PhysicalDeviceMemoryProperties
	QueueFamilies   []vulkan.QueueFamilyProperties
	Extensions      []vulkan.ExtensionProperties
	Layers          []vulkan.LayerProperties
	LayerExtensions [][]vulkan.ExtensionProperties
}

// Report is the full snapshot, one DeviceReport per adapter in driver order.
type Report struct {
	Instance InstanceReport
	Devices  []DeviceReport
}
