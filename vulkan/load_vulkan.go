//go:build cgo && (linux || darwin || freebsd)

package vulkan

// #cgo LDFLAGS: -ldl
// #include <stdlib.h>
// #include <dlfcn.h>
import "C"
import (
	"reflect"
	"strings"
	"unsafe"

	vk "github.com/goki/vulkan"
)

// Load opens the loader library, resolves vkGetInstanceProcAddr and returns
// a Driver backed by it.
func Load(library string) (Driver, error) {
	clib := C.CString(library)
	defer C.free(unsafe.Pointer(clib))
	handle := C.dlopen(clib, C.RTLD_LAZY)
	if handle == nil {
		return nil, &Error{Op: "dlopen(" + library + ")", Result: ErrorInitializationFailed}
	}
	csym := C.CString("vkGetInstanceProcAddr")
	defer C.free(unsafe.Pointer(csym))
	addr := C.dlsym(handle, csym)
	if addr == nil {
		return nil, &Error{Op: "dlsym(vkGetInstanceProcAddr)", Result: ErrorInitializationFailed}
	}
	vk.SetGetInstanceProcAddr(addr)
	if err := vk.Init(); err != nil {
		return nil, &Error{Op: "vkInit", Result: ErrorInitializationFailed}
	}
	return newLoaderDriver(), nil
}

// loaderDriver maps the opaque handles of this package onto live loader
// handles.
type loaderDriver struct {
	next      uintptr
	instances map[Instance]vk.Instance
	gpus      map[PhysicalDevice]vk.PhysicalDevice
	gpuIDs    map[vk.PhysicalDevice]PhysicalDevice
	devices   map[Device]vk.Device
}

func newLoaderDriver() *loaderDriver {
	return &loaderDriver{
		instances: make(map[Instance]vk.Instance),
		gpus:      make(map[PhysicalDevice]vk.PhysicalDevice),
		gpuIDs:    make(map[vk.PhysicalDevice]PhysicalDevice),
		devices:   make(map[Device]vk.Device),
	}
}

func (d *loaderDriver) id() uintptr {
	d.next++
	return d.next
}

// safeString null-terminates names passed down to C.
func safeString(s string) string {
	if s == "" || strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func safeStrings(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = safeString(s)
	}
	return out
}

func extensionFrom(ext vk.ExtensionProperties) ExtensionProperties {
	ext.Deref()
	return ExtensionProperties{
		ExtensionName: vk.ToString(ext.ExtensionName[:]),
		SpecVersion:   ext.SpecVersion,
	}
}

func layerFrom(layer vk.LayerProperties) LayerProperties {
	layer.Deref()
	return LayerProperties{
		LayerName:             vk.ToString(layer.LayerName[:]),
		SpecVersion:           Version(layer.SpecVersion),
		ImplementationVersion: layer.ImplementationVersion,
		Description:           vk.ToString(layer.Description[:]),
	}
}

func (d *loaderDriver) EnumerateInstanceExtensionProperties(layerName string, count *uint32, props []ExtensionProperties) Result {
	var buf []vk.ExtensionProperties
	if props != nil {
		buf = make([]vk.ExtensionProperties, len(props))
	}
	ret := Result(vk.EnumerateInstanceExtensionProperties(safeString(layerName), count, buf))
	for i := 0; i < int(*count) && i < len(buf); i++ {
		props[i] = extensionFrom(buf[i])
	}
	return ret
}

func (d *loaderDriver) EnumerateInstanceLayerProperties(count *uint32, props []LayerProperties) Result {
	var buf []vk.LayerProperties
	if props != nil {
		buf = make([]vk.LayerProperties, len(props))
	}
	ret := Result(vk.EnumerateInstanceLayerProperties(count, buf))
	for i := 0; i < int(*count) && i < len(buf); i++ {
		props[i] = layerFrom(buf[i])
	}
	return ret
}

func (d *loaderDriver) CreateInstance(info *InstanceCreateInfo) (Instance, Result) {
	exts := safeStrings(info.EnabledExtensionNames)
	var inst vk.Instance
	ret := Result(vk.CreateInstance(&vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		EnabledExtensionCount:   uint32(len(exts)),
		PpEnabledExtensionNames: exts,
	}, nil, &inst))
	if ret != Success {
		return 0, ret
	}
	if err := vk.InitInstance(inst); err != nil {
		vk.DestroyInstance(inst, nil)
		return 0, ErrorInitializationFailed
	}
	h := Instance(d.id())
	d.instances[h] = inst
	return h, Success
}

func (d *loaderDriver) DestroyInstance(instance Instance) {
	inst, ok := d.instances[instance]
	if !ok {
		return
	}
	vk.DestroyInstance(inst, nil)
	delete(d.instances, instance)
}

func (d *loaderDriver) EnumeratePhysicalDevices(instance Instance, count *uint32, gpus []PhysicalDevice) Result {
	var buf []vk.PhysicalDevice
	if gpus != nil {
		buf = make([]vk.PhysicalDevice, len(gpus))
	}
	ret := Result(vk.EnumeratePhysicalDevices(d.instances[instance], count, buf))
	for i := 0; i < int(*count) && i < len(buf); i++ {
		h, ok := d.gpuIDs[buf[i]]
		if !ok {
			h = PhysicalDevice(d.id())
			d.gpuIDs[buf[i]] = h
			d.gpus[h] = buf[i]
		}
		gpus[i] = h
	}
	return ret
}

func (d *loaderDriver) GetPhysicalDeviceProperties(gpu PhysicalDevice) PhysicalDeviceProperties {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(d.gpus[gpu], &props)
	props.Deref()
	return PhysicalDeviceProperties{
		APIVersion:    Version(props.ApiVersion),
		DriverVersion: props.DriverVersion,
		VendorID:      props.VendorID,
		DeviceID:      props.DeviceID,
		DeviceType:    PhysicalDeviceType(props.DeviceType),
		DeviceName:    vk.ToString(props.DeviceName[:]),
	}
}

func (d *loaderDriver) GetPhysicalDeviceMemoryProperties(gpu PhysicalDevice) PhysicalDeviceMemoryProperties {
	var mem vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(d.gpus[gpu], &mem)
	mem.Deref()
	out := PhysicalDeviceMemoryProperties{
		MemoryTypes: make([]MemoryType, mem.MemoryTypeCount),
		MemoryHeaps: make([]MemoryHeap, mem.MemoryHeapCount),
	}
	for i := range out.MemoryTypes {
		t := mem.MemoryTypes[i]
		t.Deref()
		out.MemoryTypes[i] = MemoryType{
			PropertyFlags: MemoryPropertyFlags(t.PropertyFlags),
			HeapIndex:     t.HeapIndex,
		}
	}
	for i := range out.MemoryHeaps {
		h := mem.MemoryHeaps[i]
		h.Deref()
		out.MemoryHeaps[i] = MemoryHeap{
			Size:  uint64(h.Size),
			Flags: MemoryHeapFlags(h.Flags),
		}
	}
	return out
}

var bool32Type = reflect.TypeOf(vk.Bool32(0))

// featuresFrom walks the exported Bool32 fields of the loader struct, so the
// list follows whatever feature set the binding was generated with.
func featuresFrom(f *vk.PhysicalDeviceFeatures) PhysicalDeviceFeatures {
	v := reflect.ValueOf(f).Elem()
	t := v.Type()
	var out PhysicalDeviceFeatures
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" || field.Type != bool32Type {
			continue
		}
		out = append(out, Feature{Name: field.Name, Enabled: v.Field(i).Uint() != 0})
	}
	return out
}

func featuresTo(features PhysicalDeviceFeatures) vk.PhysicalDeviceFeatures {
	var f vk.PhysicalDeviceFeatures
	v := reflect.ValueOf(&f).Elem()
	for _, ft := range features {
		field := v.FieldByName(ft.Name)
		if !field.IsValid() || field.Type() != bool32Type || !ft.Enabled {
			continue
		}
		field.SetUint(uint64(vk.True))
	}
	return f
}

func (d *loaderDriver) GetPhysicalDeviceFeatures(gpu PhysicalDevice) PhysicalDeviceFeatures {
	var f vk.PhysicalDeviceFeatures
	vk.GetPhysicalDeviceFeatures(d.gpus[gpu], &f)
	f.Deref()
	return featuresFrom(&f)
}

func (d *loaderDriver) GetPhysicalDeviceQueueFamilyProperties(gpu PhysicalDevice, count *uint32, props []QueueFamilyProperties) {
	var buf []vk.QueueFamilyProperties
	if props != nil {
		buf = make([]vk.QueueFamilyProperties, len(props))
	}
	vk.GetPhysicalDeviceQueueFamilyProperties(d.gpus[gpu], count, buf)
	for i := 0; i < int(*count) && i < len(buf); i++ {
		q := buf[i]
		q.Deref()
		q.MinImageTransferGranularity.Deref()
		props[i] = QueueFamilyProperties{
			QueueFlags:         QueueFlags(q.QueueFlags),
			QueueCount:         q.QueueCount,
			TimestampValidBits: q.TimestampValidBits,
			MinImageTransferGranularity: Extent3D{
				Width:  q.MinImageTransferGranularity.Width,
				Height: q.MinImageTransferGranularity.Height,
				Depth:  q.MinImageTransferGranularity.Depth,
			},
		}
	}
}

func (d *loaderDriver) EnumerateDeviceLayerProperties(gpu PhysicalDevice, count *uint32, props []LayerProperties) Result {
	var buf []vk.LayerProperties
	if props != nil {
		buf = make([]vk.LayerProperties, len(props))
	}
	ret := Result(vk.EnumerateDeviceLayerProperties(d.gpus[gpu], count, buf))
	for i := 0; i < int(*count) && i < len(buf); i++ {
		props[i] = layerFrom(buf[i])
	}
	return ret
}

func (d *loaderDriver) EnumerateDeviceExtensionProperties(gpu PhysicalDevice, layerName string, count *uint32, props []ExtensionProperties) Result {
	var buf []vk.ExtensionProperties
	if props != nil {
		buf = make([]vk.ExtensionProperties, len(props))
	}
	ret := Result(vk.EnumerateDeviceExtensionProperties(d.gpus[gpu], safeString(layerName), count, buf))
	for i := 0; i < int(*count) && i < len(buf); i++ {
		props[i] = extensionFrom(buf[i])
	}
	return ret
}

func (d *loaderDriver) CreateDevice(gpu PhysicalDevice, info *DeviceCreateInfo) (Device, Result) {
	queues := make([]vk.DeviceQueueCreateInfo, len(info.QueueCreateInfos))
	for i, q := range info.QueueCreateInfos {
		queues[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: q.QueueFamilyIndex,
			QueueCount:       uint32(len(q.QueuePriorities)),
			PQueuePriorities: q.QueuePriorities,
		}
	}
	exts := safeStrings(info.EnabledExtensionNames)
	var dev vk.Device
	ret := Result(vk.CreateDevice(d.gpus[gpu], &vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queues)),
		PQueueCreateInfos:       queues,
		EnabledExtensionCount:   uint32(len(exts)),
		PpEnabledExtensionNames: exts,
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{featuresTo(info.EnabledFeatures)},
	}, nil, &dev))
	if ret != Success {
		return 0, ret
	}
	h := Device(d.id())
	d.devices[h] = dev
	return h, Success
}

func (d *loaderDriver) DestroyDevice(device Device) {
	dev, ok := d.devices[device]
	if !ok {
		return
	}
	vk.DestroyDevice(dev, nil)
	delete(d.devices, device)
}
