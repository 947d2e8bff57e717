//go:build !cgo || !(linux || darwin || freebsd)

package vulkan

// Load reports that this binary was built without the Vulkan backend, which
// needs cgo on linux, darwin or freebsd.
func Load(library string) (Driver, error) {
	return nil, &Error{Op: "LoadVulkan", Result: ErrorInitializationFailed}
}
