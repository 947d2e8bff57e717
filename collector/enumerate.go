package collector

import "gitlab.com/nunet/vkinfo/vulkan"

// collectWithRetry runs the two-call enumeration protocol of query: a call
// with a nil buffer for the count, then a call that fills a buffer of that
// size. Incomplete from the fill means the list grew in between; the count is
// refreshed and the fill repeated. Any other non-success result ends the
// enumeration with an error naming op and the failing phase.
func collectWithRetry[T any](op string, query func(count *uint32, buf []T) vulkan.Result) ([]T, error) {
	var count uint32
	if ret := query(&count, nil); ret != vulkan.Success {
		return nil, vulkan.NewError(op+" (count)", ret)
	}

	for {
		buf := make([]T, count)
		switch ret := query(&count, buf); ret {
		case vulkan.Success:
			if int(count) > len(buf) {
				count = uint32(len(buf))
			}
			return buf[:count], nil
		case vulkan.Incomplete:
			if ret := query(&count, nil); ret != vulkan.Success {
				return nil, vulkan.NewError(op+" (count)", ret)
			}
		default:
			return nil, vulkan.NewError(op+" (data)", ret)
		}
	}
}

func instanceExtensions(d vulkan.Driver, layer string) ([]vulkan.ExtensionProperties, error) {
	return collectWithRetry("vkEnumerateInstanceExtensionProperties",
		func(count *uint32, buf []vulkan.ExtensionProperties) vulkan.Result {
			return d.EnumerateInstanceExtensionProperties(layer, count, buf)
		})
}

func instanceLayers(d vulkan.Driver) ([]vulkan.LayerProperties, error) {
	return collectWithRetry("vkEnumerateInstanceLayerProperties", d.EnumerateInstanceLayerProperties)
}

func physicalDevices(d vulkan.Driver, instance vulkan.Instance) ([]vulkan.PhysicalDevice, error) {
	return collectWithRetry("vkEnumeratePhysicalDevices",
		func(count *uint32, buf []vulkan.PhysicalDevice) vulkan.Result {
			return d.EnumeratePhysicalDevices(instance, count, buf)
		})
}

func deviceLayers(d vulkan.Driver, gpu vulkan.PhysicalDevice) ([]vulkan.LayerProperties, error) {
	return collectWithRetry("vkEnumerateDeviceLayerProperties",
		func(count *uint32, buf []vulkan.LayerProperties) vulkan.Result {
			return d.EnumerateDeviceLayerProperties(gpu, count, buf)
		})
}

func deviceExtensions(d vulkan.Driver, gpu vulkan.PhysicalDevice, layer string) ([]vulkan.ExtensionProperties, error) {
	return collectWithRetry("vkEnumerateDeviceExtensionProperties",
		func(count *uint32, buf []vulkan.ExtensionProperties) vulkan.Result {
			return d.EnumerateDeviceExtensionProperties(gpu, layer, count, buf)
		})
}

// queueFamilies has no Incomplete result to react to: the family count is
// fixed for a device, so it is a single count and fill.
func queueFamilies(d vulkan.Driver, gpu vulkan.PhysicalDevice) []vulkan.QueueFamilyProperties {
	var count uint32
	d.GetPhysicalDeviceQueueFamilyProperties(gpu, &count, nil)
	families := make([]vulkan.QueueFamilyProperties, count)
	d.GetPhysicalDeviceQueueFamilyProperties(gpu, &count, families)
	if int(count) < len(families) {
		families = families[:count]
	}
	return families
}
