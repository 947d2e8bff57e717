package collector

import "gitlab.com/nunet/vkinfo/vulkan"

// Optional extensions enabled when some provider reports them.
var (
	desiredInstanceExtensions = []string{vulkan.ExtDebugReportExtensionName}
	desiredDeviceExtensions   = []string{vulkan.KhrSwapchainExtensionName}
)

func hasExtension(extensions []vulkan.ExtensionProperties, name string) bool {
	for _, ext := range extensions {
		if ext.ExtensionName == name {
			return true
		}
	}
	return false
}

// selectExtensions keeps the desired names found in the global list or in
// any layer's list, in desired order.
func selectExtensions(desired []string, global []vulkan.ExtensionProperties, layers [][]vulkan.ExtensionProperties) []string {
	var enabled []string
	for _, name := range desired {
		available := hasExtension(global, name)
		for i := 0; !available && i < len(layers); i++ {
			available = hasExtension(layers[i], name)
		}
		if available {
			enabled = append(enabled, name)
		}
	}
	return enabled
}
