package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	library "gitlab.com/nunet/vkinfo/lib"
	"gitlab.com/nunet/vkinfo/vulkan"
	"gitlab.com/nunet/vkinfo/vulkan/vulkantest"
)

// ========= MOCK IMPLEMENTATIONS ==========

type MockDriverLoader struct {
	driver  *vulkantest.Driver
	err     error
	library string
}

func (m *MockDriverLoader) Load(library string) (vulkan.Driver, error) {
	m.library = library
	if m.err != nil {
		return nil, m.err
	}
	return m.driver, nil
}

type MockNameResolver struct {
	called bool
}

func (m *MockNameResolver) PCINames() (*library.PCINames, error) {
	m.called = true
	return &library.PCINames{}, nil
}

// executeRoot runs the root command the way Execute does and returns what
// was written to stdout and stderr together with the exit status.
func executeRoot(t *testing.T, loader *MockDriverLoader, resolver *MockNameResolver, fsys afero.Fs, args ...string) (string, string, int) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	code := run(NewRootCmd(loader, resolver, fsys), args, stdout, stderr)
	return stdout.String(), stderr.String(), code
}

func TestRootNoDevices(t *testing.T) {
	assert := assert.New(t)

	loader := &MockDriverLoader{driver: vulkantest.New()}
	out, errOut, code := executeRoot(t, loader, &MockNameResolver{}, afero.NewMemMapFs())

	assert.Equal(0, code)
	assert.Equal("PhysicalDevices [0]:\n", out)
	assert.Empty(errOut)
	assert.Equal(vulkan.DefaultLibrary, loader.library)
}

func TestRootPrintsReport(t *testing.T) {
	assert := assert.New(t)

	d := vulkantest.New()
	d.Extensions = []vulkan.ExtensionProperties{{ExtensionName: "VK_KHR_surface", SpecVersion: 25}}
	d.GPUs = []*vulkantest.GPU{{
		Properties: vulkan.PhysicalDeviceProperties{
			APIVersion:    vulkan.MakeVersion(1, 2, 0),
			DriverVersion: 0x10,
			VendorID:      0x8086,
			DeviceID:      0x3e9b,
			DeviceType:    vulkan.PhysicalDeviceTypeIntegratedGPU,
			DeviceName:    "Intel UHD",
		},
	}}

	out, errOut, code := executeRoot(t, &MockDriverLoader{driver: d}, &MockNameResolver{}, afero.NewMemMapFs())

	assert.Equal(0, code)
	assert.Empty(errOut)
	assert.Equal(`Instance Extensions [1]:
  VK_KHR_surface (v25)
PhysicalDevices [1]:
  "Intel UHD" (INTEGRATED_GPU) 1.2.0/0x10 [8086:3e9b]
`, out)
}

func TestRootDriverFailure(t *testing.T) {
	assert := assert.New(t)

	d := vulkantest.New()
	d.SetResults(vulkantest.CallEnumerateInstanceLayers, vulkan.ErrorOutOfHostMemory)

	out, errOut, code := executeRoot(t, &MockDriverLoader{driver: d}, &MockNameResolver{}, afero.NewMemMapFs())

	assert.Equal(1, code)
	assert.Empty(out)
	assert.Equal("vkEnumerateInstanceLayerProperties (count) failed: VK_ERROR_OUT_OF_HOST_MEMORY (-1)\n", errOut)
	assert.Equal(1, strings.Count(errOut, "\n"))
}

func TestRootLoadFailure(t *testing.T) {
	assert := assert.New(t)

	loader := &MockDriverLoader{err: vulkan.NewError("LoadVulkan", vulkan.ErrorInitializationFailed)}
	out, errOut, code := executeRoot(t, loader, &MockNameResolver{}, afero.NewMemMapFs())

	assert.Equal(1, code)
	assert.Empty(out)
	assert.Equal("LoadVulkan failed: VK_ERROR_INITIALIZATION_FAILED (-3)\n", errOut)
}

func TestRootRejectsArguments(t *testing.T) {
	assert := assert.New(t)

	loader := &MockDriverLoader{driver: vulkantest.New()}
	out, errOut, code := executeRoot(t, loader, &MockNameResolver{}, afero.NewMemMapFs(), "extra")

	assert.Equal(1, code)
	assert.Empty(out)
	assert.Equal(1, strings.Count(errOut, "\n"))
	assert.True(strings.HasSuffix(errOut, "\n"))
	assert.Contains(errOut, `"extra"`)
	assert.Empty(loader.driver.Calls)
}

func TestRootUsesConfig(t *testing.T) {
	assert := assert.New(t)

	fsys := afero.NewMemMapFs()
	afero.WriteFile(fsys, "vkinfo_config.json", []byte(`{
// loader override
"vulkan": {"library": "/opt/vulkan/libvulkan.so.1"},
"general": {"debug": true}
}`), 0o644)

	loader := &MockDriverLoader{driver: vulkantest.New()}
	resolver := &MockNameResolver{}
	out, _, code := executeRoot(t, loader, resolver, fsys)

	assert.Equal(0, code)
	assert.Equal("PhysicalDevices [0]:\n", out)
	assert.Equal("/opt/vulkan/libvulkan.so.1", loader.library)
	assert.True(resolver.called)
}

func TestRootMalformedConfigUsesDefaults(t *testing.T) {
	assert := assert.New(t)

	fsys := afero.NewMemMapFs()
	afero.WriteFile(fsys, "vkinfo_config.json", []byte(`{"vulkan": `), 0o644)

	loader := &MockDriverLoader{driver: vulkantest.New()}
	resolver := &MockNameResolver{}
	_, errOut, code := executeRoot(t, loader, resolver, fsys)

	assert.Equal(0, code)
	assert.Empty(errOut)
	assert.Equal(vulkan.DefaultLibrary, loader.library)
	assert.False(resolver.called)
}
