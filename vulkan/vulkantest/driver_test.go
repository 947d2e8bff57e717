package vulkantest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/nunet/vkinfo/vulkan"
)

func layers(names ...string) []vulkan.LayerProperties {
	out := make([]vulkan.LayerProperties, len(names))
	for i, n := range names {
		out[i] = vulkan.LayerProperties{LayerName: n}
	}
	return out
}

func TestTwoCallProtocol(t *testing.T) {
	assert := assert.New(t)
	d := New()
	d.Layers = layers("a", "b", "c")

	var count uint32
	assert.Equal(vulkan.Success, d.EnumerateInstanceLayerProperties(&count, nil))
	assert.Equal(uint32(3), count)

	buf := make([]vulkan.LayerProperties, count)
	assert.Equal(vulkan.Success, d.EnumerateInstanceLayerProperties(&count, buf))
	assert.Equal(d.Layers, buf)
}

func TestShortBufferIsIncomplete(t *testing.T) {
	assert := assert.New(t)
	d := New()
	d.Layers = layers("a", "b", "c")

	count := uint32(2)
	buf := make([]vulkan.LayerProperties, 2)
	assert.Equal(vulkan.Incomplete, d.EnumerateInstanceLayerProperties(&count, buf))
	assert.Equal(uint32(2), count)
	assert.Equal("b", buf[1].LayerName)
}

func TestQueuedResultsAndHooks(t *testing.T) {
	assert := assert.New(t)
	d := New()
	d.SetResults(CallEnumerateInstanceLayers, vulkan.Success, vulkan.ErrorDeviceLost)
	d.Before(CallEnumerateInstanceLayers, 3, func(d *Driver) {
		d.Layers = layers("late")
	})

	var count uint32
	assert.Equal(vulkan.Success, d.EnumerateInstanceLayerProperties(&count, nil))
	assert.Equal(vulkan.ErrorDeviceLost, d.EnumerateInstanceLayerProperties(&count, nil))
	assert.Equal(vulkan.Success, d.EnumerateInstanceLayerProperties(&count, nil))
	assert.Equal(uint32(1), count)
	assert.Equal(3, d.CallCount(CallEnumerateInstanceLayers))
}

func TestHandlesAreTracked(t *testing.T) {
	assert := assert.New(t)
	d := New()
	d.GPUs = []*GPU{{}}

	inst, ret := d.CreateInstance(&vulkan.InstanceCreateInfo{})
	assert.Equal(vulkan.Success, ret)
	dev, ret := d.CreateDevice(vulkan.PhysicalDevice(1), &vulkan.DeviceCreateInfo{})
	assert.Equal(vulkan.Success, ret)

	instances, devices := d.Live()
	assert.Equal(1, instances)
	assert.Equal(1, devices)

	d.DestroyDevice(dev)
	d.DestroyInstance(inst)
	instances, devices = d.Live()
	assert.Zero(instances)
	assert.Zero(devices)
}

func TestHookChangesStateSeenByCall(t *testing.T) {
	assert := assert.New(t)
	d := New()
	d.GPUs = []*GPU{{}}
	d.Before(CallEnumeratePhysicalDevices, 2, func(d *Driver) {
		d.GPUs = append(d.GPUs, &GPU{}, &GPU{})
	})

	var count uint32
	assert.Equal(vulkan.Success, d.EnumeratePhysicalDevices(1, &count, nil))
	assert.Equal(uint32(1), count)

	buf := make([]vulkan.PhysicalDevice, count)
	assert.Equal(vulkan.Incomplete, d.EnumeratePhysicalDevices(1, &count, buf))
	assert.Equal(uint32(1), count)

	assert.Equal(vulkan.Success, d.EnumeratePhysicalDevices(1, &count, nil))
	assert.Equal(uint32(3), count)
}
