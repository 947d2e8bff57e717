package backend

import (
	library "gitlab.com/nunet/vkinfo/lib"
	"gitlab.com/nunet/vkinfo/vulkan"
)

// DriverLoader abstracts opening the Vulkan loader library
type DriverLoader interface {
	Load(library string) (vulkan.Driver, error)
}

// NameResolver abstracts the PCI ID database used for debug output
type NameResolver interface {
	PCINames() (*library.PCINames, error)
}

type Vulkan struct{}

func (v *Vulkan) Load(library string) (vulkan.Driver, error) {
	return vulkan.Load(library)
}

type PCIDB struct{}

func (p *PCIDB) PCINames() (*library.PCINames, error) {
	return library.NewPCINames()
}
