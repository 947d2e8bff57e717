package vulkan

// DefaultLibrary is the loader library opened when no other is configured.
const DefaultLibrary = "libvulkan.so.1"
