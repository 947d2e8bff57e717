package library

import (
	"fmt"

	"github.com/jaypipes/pcidb"
)

// PCINames resolves vendor and device names from the local pci.ids database.
// A zero value (or one whose database failed to load) falls back to the
// built-in vendor table and hex IDs.
type PCINames struct {
	db *pcidb.PCIDB
}

// pci.ids locations, tried in order
var pciIDsPaths = []string{
	"/usr/share/hwdata/pci.ids",
	"/usr/share/misc/pci.ids",
	"/usr/share/hwdata/pci.ids.gz",
	"/usr/share/misc/pci.ids.gz",
}

// NewPCINames loads the local PCI database. The returned PCINames is usable
// even when err is non-nil.
func NewPCINames() (*PCINames, error) {
	return loadPCINames(pciIDsPaths)
}

// loadPCINames opens the first database found in paths. Every pcidb option
// is set explicitly so PCIDB_* environment variables have no effect, and
// nothing is fetched from the network.
func loadPCINames(paths []string) (*PCINames, error) {
	off := false
	err := pcidb.ERR_NO_DB
	for _, path := range paths {
		var db *pcidb.PCIDB
		db, err = pcidb.New(
			pcidb.WithChroot("/"),
			pcidb.WithDirectPath(path),
			&pcidb.WithOption{CacheOnly: &off, EnableNetworkFetch: &off},
		)
		if err == nil {
			return &PCINames{db: db}, nil
		}
	}
	return &PCINames{}, err
}

func hexID(id uint32) string {
	return fmt.Sprintf("%04x", id)
}

// Vendor returns the vendor name for a PCI vendor ID.
func (p *PCINames) Vendor(vendorID uint32) string {
	if p != nil && p.db != nil {
		if v, ok := p.db.Vendors[hexID(vendorID)]; ok {
			return v.Name
		}
	}
	if v := VendorFromID(vendorID); v != Unknown {
		return v.String()
	}
	return "0x" + hexID(vendorID)
}

// Product returns the product name for a vendor/device ID pair, or "" when
// the database does not know it.
func (p *PCINames) Product(vendorID, deviceID uint32) string {
	if p == nil || p.db == nil {
		return ""
	}
	if prod, ok := p.db.Products[hexID(vendorID)+hexID(deviceID)]; ok {
		return prod.Name
	}
	return ""
}
