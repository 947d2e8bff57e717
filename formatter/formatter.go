// Package formatter renders a models.Report as indented plain text.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"gitlab.com/nunet/vkinfo/models"
	"gitlab.com/nunet/vkinfo/vulkan"
)

const indent = "  "

// Print writes the rendered report to w. The only error it returns is the
// writer's.
func Print(w io.Writer, r *models.Report) error {
	_, err := io.WriteString(w, Sprint(r))
	return err
}

// Sprint renders the report. The output depends on r alone and keeps the
// collection order of every list.
func Sprint(r *models.Report) string {
	var b strings.Builder

	if len(r.Instance.Extensions) > 0 {
		fmt.Fprintf(&b, "Instance Extensions [%d]:\n", len(r.Instance.Extensions))
		writeExtensions(&b, r.Instance.Extensions, indent)
	}
	if len(r.Instance.Layers) > 0 {
		fmt.Fprintf(&b, "Instance Layers [%d]:\n", len(r.Instance.Layers))
		writeLayers(&b, r.Instance.Layers, r.Instance.LayerExtensions, indent)
	}

	fmt.Fprintf(&b, "PhysicalDevices [%d]:\n", len(r.Devices))
	for i := range r.Devices {
		writeDevice(&b, &r.Devices[i])
	}

	return b.String()
}

func writeExtensions(b *strings.Builder, extensions []vulkan.ExtensionProperties, prefix string) {
	for _, e := range extensions {
		fmt.Fprintf(b, "%s%s (v%d)\n", prefix, e.ExtensionName, e.SpecVersion)
	}
}

func writeLayers(b *strings.Builder, layers []vulkan.LayerProperties, extensions [][]vulkan.ExtensionProperties, prefix string) {
	extPrefix := prefix + indent + indent
	for i, layer := range layers {
		fmt.Fprintf(b, "%s%s %s/%d\n", prefix, layer.LayerName, layer.SpecVersion, layer.ImplementationVersion)
		fmt.Fprintf(b, "%s%s%s\n", prefix, indent, layer.Description)
		if i < len(extensions) && len(extensions[i]) > 0 {
			fmt.Fprintf(b, "%s%sExtensions [%d]:\n", prefix, indent, len(extensions[i]))
			writeExtensions(b, extensions[i], extPrefix)
		}
	}
}

// heapMiB converts a heap size in bytes to whole mebibytes.
func heapMiB(size uint64) uint64 {
	return size >> 20
}

func writeDevice(b *strings.Builder, info *models.DeviceReport) {
	props := info.Properties
	fmt.Fprintf(b, "%s\"%s\" (%s) %s/%#x [%04x:%04x]\n", indent,
		props.DeviceName, props.DeviceType, props.APIVersion,
		props.DriverVersion, props.VendorID, props.DeviceID)

	heapPrefix := strings.Repeat(indent, 2)
	typePrefix := strings.Repeat(indent, 3)
	for heap, h := range info.Memory.MemoryHeaps {
		annotation := ""
		if flags := h.Flags.String(); flags != "" {
			annotation = " " + flags
		}
		fmt.Fprintf(b, "%sHeap %d: %d MiB (0x%x B)%s\n", heapPrefix, heap, heapMiB(h.Size), h.Size, annotation)

		for typ, t := range info.Memory.MemoryTypes {
			if t.HeapIndex != uint32(heap) {
				continue
			}
			fmt.Fprintf(b, "%sType %d:", typePrefix, typ)
			for _, name := range t.PropertyFlags.Names() {
				b.WriteString(" " + name)
			}
			b.WriteString("\n")
		}
	}

	for family, q := range info.QueueFamilies {
		fmt.Fprintf(b, "%sQueue Family %d: %dx %s\n", heapPrefix, family, q.QueueCount, q.QueueFlags.Code())
		fmt.Fprintf(b, "%stimestampValidBits: %db\n", typePrefix, q.TimestampValidBits)
		g := q.MinImageTransferGranularity
		fmt.Fprintf(b, "%sminImageTransferGranularity: (%d,%d,%d)\n", typePrefix, g.Width, g.Height, g.Depth)
	}

	if len(info.Extensions) > 0 {
		fmt.Fprintf(b, "%sExtensions [%d]:\n", heapPrefix, len(info.Extensions))
		writeExtensions(b, info.Extensions, typePrefix)
	}
	if len(info.Layers) > 0 {
		fmt.Fprintf(b, "%sLayers [%d]:\n", heapPrefix, len(info.Layers))
		writeLayers(b, info.Layers, info.LayerExtensions, typePrefix)
	}
}
