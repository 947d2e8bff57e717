// Package vulkantest provides an in-memory vulkan.Driver for tests.
package vulkantest

import (
	"fmt"

	"gitlab.com/nunet/vkinfo/vulkan"
)

// Names of the recorded driver calls.
const (
	CallEnumerateInstanceExtensions = "vkEnumerateInstanceExtensionProperties"
	CallEnumerateInstanceLayers     = "vkEnumerateInstanceLayerProperties"
	CallCreateInstance              = "vkCreateInstance"
	CallDestroyInstance             = "vkDestroyInstance"
	CallEnumeratePhysicalDevices    = "vkEnumeratePhysicalDevices"
	CallGetProperties               = "vkGetPhysicalDeviceProperties"
	CallGetMemoryProperties         = "vkGetPhysicalDeviceMemoryProperties"
	CallGetFeatures                 = "vkGetPhysicalDeviceFeatures"
	CallGetQueueFamilyProperties    = "vkGetPhysicalDeviceQueueFamilyProperties"
	CallEnumerateDeviceLayers       = "vkEnumerateDeviceLayerProperties"
	CallEnumerateDeviceExtensions   = "vkEnumerateDeviceExtensionProperties"
	CallCreateDevice                = "vkCreateDevice"
	CallDestroyDevice               = "vkDestroyDevice"
)

// GPU is the fake state of one physical device.
type GPU struct {
	Properties      vulkan.PhysicalDeviceProperties
	Memory          vulkan.PhysicalDeviceMemoryProperties
	Features        vulkan.PhysicalDeviceFeatures
	QueueFamilies   []vulkan.QueueFamilyProperties
	Extensions      []vulkan.ExtensionProperties
	Layers          []vulkan.LayerProperties
	LayerExtensions map[string][]vulkan.ExtensionProperties
}

// Driver behaves like a well formed Vulkan implementation over the lists it
// holds. Results can be overridden per call, and hooks run before a given
// call so tests can change the driver state between the count and the fill.
type Driver struct {
	Extensions      []vulkan.ExtensionProperties
	Layers          []vulkan.LayerProperties
	LayerExtensions map[string][]vulkan.ExtensionProperties
	GPUs            []*GPU

	// Calls records every call in order, named after the C entry point.
	Calls []string

	// CreatedInstance and CreatedDevices capture the create infos received.
	CreatedInstance *vulkan.InstanceCreateInfo
	CreatedDevices  []vulkan.DeviceCreateInfo

	results map[string][]vulkan.Result
	hooks   map[string]map[int]func(*Driver)
	counts  map[string]int

	liveInstances map[vulkan.Instance]bool
	liveDevices   map[vulkan.Device]bool
	next          uintptr
}

// New returns an empty driver: no extensions, layers or devices.
func New() *Driver {
	return &Driver{
		LayerExtensions: make(map[string][]vulkan.ExtensionProperties),
		results:         make(map[string][]vulkan.Result),
		hooks:           make(map[string]map[int]func(*Driver)),
		counts:          make(map[string]int),
		liveInstances:   make(map[vulkan.Instance]bool),
		liveDevices:     make(map[vulkan.Device]bool),
	}
}

// SetResults queues results for the named call. Each queued result is used by
// one call in order and replaces the outcome the driver would have produced.
func (d *Driver) SetResults(call string, results ...vulkan.Result) {
	d.results[call] = append(d.results[call], results...)
}

// Before registers fn to run just before the n-th (1-based) invocation of call.
func (d *Driver) Before(call string, n int, fn func(*Driver)) {
	if d.hooks[call] == nil {
		d.hooks[call] = make(map[int]func(*Driver))
	}
	d.hooks[call][n] = fn
}

// CallCount returns how many times call was made.
func (d *Driver) CallCount(call string) int {
	return d.counts[call]
}

// Live reports the number of instances and devices not yet destroyed.
func (d *Driver) Live() (instances, devices int) {
	return len(d.liveInstances), len(d.liveDevices)
}

// GPU returns the fake device behind a handle.
func (d *Driver) GPU(gpu vulkan.PhysicalDevice) *GPU {
	i := int(gpu) - 1
	if i < 0 || i >= len(d.GPUs) {
		panic(fmt.Sprintf("vulkantest: unknown physical device %d", gpu))
	}
	return d.GPUs[i]
}

func (d *Driver) record(call string) (vulkan.Result, bool) {
	d.counts[call]++
	d.Calls = append(d.Calls, call)
	if fn, ok := d.hooks[call][d.counts[call]]; ok {
		fn(d)
	}
	queued := d.results[call]
	if len(queued) == 0 {
		return vulkan.Success, false
	}
	d.results[call] = queued[1:]
	return queued[0], true
}

// fill implements the two-call protocol over list.
func fill[T any](list []T, count *uint32, buf []T) vulkan.Result {
	if buf == nil {
		*count = uint32(len(list))
		return vulkan.Success
	}
	n := int(*count)
	if n > len(buf) {
		n = len(buf)
	}
	written := copy(buf[:n], list)
	*count = uint32(written)
	if written < len(list) {
		return vulkan.Incomplete
	}
	return vulkan.Success
}

// enumerate runs fill unless a queued result overrides it. A queued
// Incomplete still writes what fits, as a driver would. list is read after
// the call is recorded so a Before hook sees its changes applied.
func enumerate[T any](d *Driver, call string, list func() []T, count *uint32, buf []T) vulkan.Result {
	forced, ok := d.record(call)
	if !ok {
		return fill(list(), count, buf)
	}
	if forced == vulkan.Incomplete || forced == vulkan.Success {
		fill(list(), count, buf)
	}
	return forced
}

func (d *Driver) EnumerateInstanceExtensionProperties(layerName string, count *uint32, props []vulkan.ExtensionProperties) vulkan.Result {
	return enumerate(d, CallEnumerateInstanceExtensions, func() []vulkan.ExtensionProperties {
		if layerName != "" {
			return d.LayerExtensions[layerName]
		}
		return d.Extensions
	}, count, props)
}

func (d *Driver) EnumerateInstanceLayerProperties(count *uint32, props []vulkan.LayerProperties) vulkan.Result {
	return enumerate(d, CallEnumerateInstanceLayers, func() []vulkan.LayerProperties {
		return d.Layers
	}, count, props)
}

func (d *Driver) CreateInstance(info *vulkan.InstanceCreateInfo) (vulkan.Instance, vulkan.Result) {
	if ret, ok := d.record(CallCreateInstance); ok && ret != vulkan.Success {
		return 0, ret
	}
	d.CreatedInstance = info
	d.next++
	h := vulkan.Instance(d.next)
	d.liveInstances[h] = true
	return h, vulkan.Success
}

func (d *Driver) DestroyInstance(instance vulkan.Instance) {
	d.record(CallDestroyInstance)
	delete(d.liveInstances, instance)
}

func (d *Driver) EnumeratePhysicalDevices(instance vulkan.Instance, count *uint32, gpus []vulkan.PhysicalDevice) vulkan.Result {
	return enumerate(d, CallEnumeratePhysicalDevices, func() []vulkan.PhysicalDevice {
		handles := make([]vulkan.PhysicalDevice, len(d.GPUs))
		for i := range handles {
			handles[i] = vulkan.PhysicalDevice(i + 1)
		}
		return handles
	}, count, gpus)
}

func (d *Driver) GetPhysicalDeviceProperties(gpu vulkan.PhysicalDevice) vulkan.PhysicalDeviceProperties {
	d.record(CallGetProperties)
	return d.GPU(gpu).Properties
}

func (d *Driver) GetPhysicalDeviceMemoryProperties(gpu vulkan.PhysicalDevice) vulkan.PhysicalDeviceMemoryProperties {
	d.record(CallGetMemoryProperties)
	return d.GPU(gpu).Memory
}

func (d *Driver) GetPhysicalDeviceFeatures(gpu vulkan.PhysicalDevice) vulkan.PhysicalDeviceFeatures {
	d.record(CallGetFeatures)
	return d.GPU(gpu).Features
}

func (d *Driver) GetPhysicalDeviceQueueFamilyProperties(gpu vulkan.PhysicalDevice, count *uint32, props []vulkan.QueueFamilyProperties) {
	d.record(CallGetQueueFamilyProperties)
	fill(d.GPU(gpu).QueueFamilies, count, props)
}

func (d *Driver) EnumerateDeviceLayerProperties(gpu vulkan.PhysicalDevice, count *uint32, props []vulkan.LayerProperties) vulkan.Result {
	return enumerate(d, CallEnumerateDeviceLayers, func() []vulkan.LayerProperties {
		return d.GPU(gpu).Layers
	}, count, props)
}

func (d *Driver) EnumerateDeviceExtensionProperties(gpu vulkan.PhysicalDevice, layerName string, count *uint32, props []vulkan.ExtensionProperties) vulkan.Result {
	return enumerate(d, CallEnumerateDeviceExtensions, func() []vulkan.ExtensionProperties {
		g := d.GPU(gpu)
		if layerName != "" {
			return g.LayerExtensions[layerName]
		}
		return g.Extensions
	}, count, props)
}

func (d *Driver) CreateDevice(gpu vulkan.PhysicalDevice, info *vulkan.DeviceCreateInfo) (vulkan.Device, vulkan.Result) {
	if ret, ok := d.record(CallCreateDevice); ok && ret != vulkan.Success {
		return 0, ret
	}
	d.GPU(gpu)
	d.CreatedDevices = append(d.CreatedDevices, *info)
	d.next++
	h := vulkan.Device(d.next)
	d.liveDevices[h] = true
	return h, vulkan.Success
}

func (d *Driver) DestroyDevice(device vulkan.Device) {
	d.record(CallDestroyDevice)
	delete(d.liveDevices, device)
}
