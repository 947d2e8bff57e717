package collector

import "gitlab.com/nunet/vkinfo/vulkan"

// session owns an open instance. Close releases it and is safe to defer
// right after a successful open.
type session struct {
	driver   vulkan.Driver
	instance vulkan.Instance
}

func openSession(d vulkan.Driver, extensions []string) (*session, error) {
	instance, ret := d.CreateInstance(&vulkan.InstanceCreateInfo{
		EnabledExtensionNames: extensions,
	})
	if err := vulkan.NewError("vkCreateInstance", ret); err != nil {
		return nil, err
	}
	return &session{driver: d, instance: instance}, nil
}

func (s *session) Close() {
	s.driver.DestroyInstance(s.instance)
}

// probeDevice creates a logical device on queue family 0 with one queue and
// the given extensions and features, then destroys it straight away. It only
// proves that device creation succeeds.
func probeDevice(d vulkan.Driver, gpu vulkan.PhysicalDevice, extensions []string, features vulkan.PhysicalDeviceFeatures) error {
	device, ret := d.CreateDevice(gpu, &vulkan.DeviceCreateInfo{
		QueueCreateInfos: []vulkan.DeviceQueueCreateInfo{{
			QueueFamilyIndex: 0,
			QueuePriorities:  []float32{0.0},
		}},
		EnabledExtensionNames: extensions,
		EnabledFeatures:       features,
	})
	if err := vulkan.NewError("vkCreateDevice", ret); err != nil {
		return err
	}
	defer d.DestroyDevice(device)
	return nil
}
