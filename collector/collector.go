// Package collector gathers the instance and per-device capabilities of a
// Vulkan driver into a models.Report.
package collector

import (
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"gitlab.com/nunet/vkinfo/internal/logger"
	library "gitlab.com/nunet/vkinfo/lib"
	"gitlab.com/nunet/vkinfo/models"
	"gitlab.com/nunet/vkinfo/vulkan"
)

type Collector struct {
	driver vulkan.Driver
	zlog   *zap.Logger
	names  *library.PCINames
}

// New returns a Collector over driver. A nil logger disables logging.
func New(driver vulkan.Driver, log *logger.Logger) *Collector {
	c := &Collector{driver: driver, zlog: zap.NewNop()}
	if log != nil {
		c.zlog = log.Logger
	}
	return c
}

// WithPCINames lets debug output name vendors and products.
func (c *Collector) WithPCINames(names *library.PCINames) *Collector {
	c.names = names
	return c
}

// Collect returns a fully populated report, or the error of the first driver
// call that failed. No query is issued after a failure; only the instance and
// device already created are released.
func (c *Collector) Collect() (*models.Report, error) {
	report := &models.Report{}

	if err := c.gatherInstance(&report.Instance); err != nil {
		return nil, err
	}

	extensions := selectExtensions(desiredInstanceExtensions, report.Instance.Extensions, report.Instance.LayerExtensions)
	c.zlog.Debug("creating instance", zap.Strings("extensions", extensions))

	s, err := openSession(c.driver, extensions)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	gpus, err := physicalDevices(c.driver, s.instance)
	if err != nil {
		return nil, err
	}
	c.zlog.Debug("physical devices enumerated", zap.Int("count", len(gpus)))

	report.Devices = make([]models.DeviceReport, len(gpus))
	for i, gpu := range gpus {
		if err := c.gatherDevice(gpu, &report.Devices[i]); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (c *Collector) gatherInstance(info *models.InstanceReport) error {
	var err error

	info.Layers, err = instanceLayers(c.driver)
	if err != nil {
		return err
	}

	info.Extensions, err = instanceExtensions(c.driver, "")
	if err != nil {
		return err
	}

	info.LayerExtensions = make([][]vulkan.ExtensionProperties, len(info.Layers))
	for i, layer := range info.Layers {
		info.LayerExtensions[i], err = instanceExtensions(c.driver, layer.LayerName)
		if err != nil {
			return err
		}
	}

	c.zlog.Debug("instance capabilities gathered",
		zap.Int("extensions", len(info.Extensions)),
		zap.Int("layers", len(info.Layers)),
	)
	return nil
}

func (c *Collector) gatherDevice(gpu vulkan.PhysicalDevice, info *models.DeviceReport) error {
	var err error

	info.Properties = c.driver.GetPhysicalDeviceProperties(gpu)
	info.Memory = c.driver.GetPhysicalDeviceMemoryProperties(gpu)
	info.Features = c.driver.GetPhysicalDeviceFeatures(gpu)
	info.QueueFamilies = queueFamilies(c.driver, gpu)

	info.Layers, err = deviceLayers(c.driver, gpu)
	if err != nil {
		return err
	}

	info.Extensions, err = deviceExtensions(c.driver, gpu, "")
	if err != nil {
		return err
	}

	info.LayerExtensions = make([][]vulkan.ExtensionProperties, len(info.Layers))
	for i, layer := range info.Layers {
		info.LayerExtensions[i], err = deviceExtensions(c.driver, gpu, layer.LayerName)
		if err != nil {
			return err
		}
	}

	c.logDevice(info)

	extensions := selectExtensions(desiredDeviceExtensions, info.Extensions, info.LayerExtensions)
	if err := probeDevice(c.driver, gpu, extensions, info.Features); err != nil {
		return err
	}
	c.zlog.Debug("logical device probe succeeded",
		zap.String("device", info.Properties.DeviceName),
		zap.Strings("extensions", extensions),
	)
	return nil
}

func (c *Collector) logDevice(info *models.DeviceReport) {
	if ce := c.zlog.Check(zap.DebugLevel, "physical device gathered"); ce != nil {
		props := info.Properties
		fields := []zap.Field{
			zap.String("device", props.DeviceName),
			zap.String("vendor", c.names.Vendor(props.VendorID)),
			zap.Stringer("type", props.DeviceType),
			zap.Stringer("api", props.APIVersion),
			zap.Int("queue_families", len(info.QueueFamilies)),
			zap.Int("extensions", len(info.Extensions)),
			zap.Int("layers", len(info.Layers)),
			zap.Int("features_enabled", len(info.Features.EnabledNames())),
		}
		if product := c.names.Product(props.VendorID, props.DeviceID); product != "" {
			fields = append(fields, zap.String("product", product))
		}
		ce.Write(fields...)
	}

	for i, heap := range info.Memory.MemoryHeaps {
		c.zlog.Debug("memory heap",
			zap.Int("heap", i),
			zap.String("size", humanize.IBytes(heap.Size)),
			zap.Stringer("flags", heap.Flags),
		)
	}
	for i, family := range info.QueueFamilies {
		c.zlog.Debug("queue family",
			zap.Int("family", i),
			zap.Stringer("flags", family.QueueFlags),
			zap.Uint32("count", family.QueueCount),
		)
	}
}
