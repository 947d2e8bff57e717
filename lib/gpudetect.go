package library

type GPUVendor int

const (
	Unknown GPUVendor = iota
	NVIDIA
	AMD
	Intel
	ARM
	Qualcomm
	ImgTec
	Apple
)

// PCI vendor IDs as reported in VkPhysicalDeviceProperties.vendorID.
var vendorIDs = map[uint32]GPUVendor{
	0x10DE: NVIDIA,
	0x1002: AMD,
	0x8086: Intel,
	0x13B5: ARM,
	0x5143: Qualcomm,
	0x1010: ImgTec,
	0x106B: Apple,
}

func (g GPUVendor) String() string {
	switch g {
	case NVIDIA:
		return "NVIDIA"
	case AMD:
		return "AMD"
	case Intel:
		return "Intel"
	case ARM:
		return "ARM"
	case Qualcomm:
		return "Qualcomm"
	case ImgTec:
		return "ImgTec"
	case Apple:
		return "Apple"
	default:
		return "Unknown"
	}
}

// VendorFromID maps a PCI vendor ID onto a known GPU vendor.
func VendorFromID(id uint32) GPUVendor {
	if v, ok := vendorIDs[id]; ok {
		return v
	}
	return Unknown
}
