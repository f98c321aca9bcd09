package vkframe

import (
	"context"
	"log/slog"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

const (
	// ValidationLayer is the Khronos validation layer.
	ValidationLayer = "VK_LAYER_KHRONOS_validation"
	// DebugReportExtension is required by SetDebugCallback.
	DebugReportExtension = "VK_EXT_debug_report"
	// SwapchainExtension is required on the device to present.
	SwapchainExtension = "VK_KHR_swapchain"
)

// InitializeHeadless loads the Vulkan loader without a window system. Programs
// that present initialize through the window package instead.
func InitializeHeadless() error {
	if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		return err
	}
	return vk.Init()
}

// Version is used to specify versions of components
type Version struct {
	Major int
	Minor int
	Patch int
}

// VKVersion returns a Vulkan compatible version representation
func (v *Version) VKVersion() uint32 {
	return vk.MakeVersion(v.Major, v.Minor, v.Patch)
}

// App is used to provide information about this specific application to Vulkan
type App struct {
	// Name the name of the application
	Name string
	// Engine the name of the engine associated with the application
	EngineName string
	// Version the version of the application
	Version Version
	// APIVersion the expected minimum version of the Vulkan API (i.e. 1.3.0)
	APIVersion Version

	// EnabledLayers the enabled layers
	EnabledLayers []string

	// EnabledExtensions the enabled extensions
	EnabledExtensions []string

	// Flags are passed through to the instance create info
	Flags vk.InstanceCreateFlags
}

// EnableLayer enables a layer; the loader rejects instance creation if it is missing.
func (a *App) EnableLayer(layer string) *App {
	a.EnabledLayers = append(a.EnabledLayers, layer)
	return a
}

// EnableExtension enables an extension for use by the application
func (a *App) EnableExtension(extension string) *App {
	for _, e := range a.EnabledExtensions {
		if e == extension {
			return a
		}
	}
	a.EnabledExtensions = append(a.EnabledExtensions, extension)
	return a
}

// EnablePortability adds what the platform needs to enumerate portability
// implementations (MoltenVK on darwin). It does nothing elsewhere.
func (a *App) EnablePortability() *App {
	for _, ext := range portabilityInstanceExtensions {
		a.EnableExtension(ext)
	}
	a.Flags |= portabilityInstanceFlags
	return a
}

//VKApplicationInfo creates a structure representing this application in a Vulkan friendly format
func (a *App) VKApplicationInfo() vk.ApplicationInfo {

	if a.APIVersion.Major < 1 {
		a.APIVersion.Major = 1
	}

	var appInfo = vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         a.APIVersion.VKVersion(),
		ApplicationVersion: a.Version.VKVersion(),
		PApplicationName:   safeString(a.Name),
		PEngineName:        safeString(a.EngineName),
	}
	return appInfo
}

// CreateInstance creates the Vulkan Instance
func (a *App) CreateInstance(driver Driver) (*Instance, error) {
	appInfo := a.VKApplicationInfo()

	extensions := safeStrings(a.EnabledExtensions)
	layers := safeStrings(a.EnabledLayers)

	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		Flags:                   a.Flags,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
	}

	instance, err := driver.CreateInstance(&createInfo)
	if err != nil {
		return nil, err
	}
	return &Instance{Driver: driver, VKInstance: instance}, nil
}

//Instance is an instance of the Vulkan subsystem
type Instance struct {
	Driver Driver
	//VKInstance is the native Vulkan instance object
	VKInstance vk.Instance
}

func (i *Instance) Destroy() {
	i.Driver.DestroyInstance(i.VKInstance)
}

//PhysicalDevices returns a list of physical devices known to Vulkan
func (i *Instance) PhysicalDevices() ([]*PhysicalDevice, error) {
	devices, err := i.Driver.EnumeratePhysicalDevices(i.VKInstance)
	if err != nil {
		return nil, err
	}

	ret := make([]*PhysicalDevice, len(devices))
	for j, device := range devices {
		props := i.Driver.GetPhysicalDeviceProperties(device)
		ret[j] = &PhysicalDevice{
			Driver:                     i.Driver,
			VKPhysicalDevice:           device,
			VKPhysicalDeviceProperties: props,
			DeviceName:                 vk.ToString(props.DeviceName[:]),
		}
	}
	return ret, nil
}

// SetDebugCallback installs callback for error, warning and information reports.
func (i *Instance) SetDebugCallback(callback vk.DebugReportCallbackFunc) (vk.DebugReportCallback, error) {
	return i.Driver.CreateDebugReportCallback(i.VKInstance, &vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       vk.DebugReportFlags(vk.DebugReportErrorBit | vk.DebugReportWarningBit | vk.DebugReportInformationBit),
		PfnCallback: callback,
	})
}

func (i *Instance) DestroyDebugCallback(callback vk.DebugReportCallback) {
	i.Driver.DestroyDebugReportCallback(i.VKInstance, callback)
}

func (i *Instance) DestroySurface(surface vk.Surface) {
	i.Driver.DestroySurface(i.VKInstance, surface)
}

// debugReportLevel maps report flags to a log level, most severe flag first.
func debugReportLevel(flags vk.DebugReportFlags) slog.Level {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return slog.LevelError
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit) != 0:
		return slog.LevelWarn
	case flags&vk.DebugReportFlags(vk.DebugReportDebugBit) != 0:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// DefaultDebugCallback logs the report through Logger and lets the call proceed.
func DefaultDebugCallback(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint, messageCode int32, pLayerPrefix string,
	pMessage string, pUserData unsafe.Pointer) vk.Bool32 {

	Logger().Log(context.Background(), debugReportLevel(flags), pMessage,
		"layer", pLayerPrefix,
		"code", messageCode,
		"object_type", objectType)
	return vk.Bool32(vk.False)
}

// SupportedLayers returns the instance layers the loader knows about. The loader
// must be initialized.
func SupportedLayers() ([]string, error) {
	var instanceLayerLen uint32
	err := enumerateError("vkEnumerateInstanceLayerProperties", vk.EnumerateInstanceLayerProperties(&instanceLayerLen, nil))
	if err != nil {
		return nil, err
	}
	instanceLayer := make([]vk.LayerProperties, instanceLayerLen)
	err = enumerateError("vkEnumerateInstanceLayerProperties", vk.EnumerateInstanceLayerProperties(&instanceLayerLen, instanceLayer))
	if err != nil {
		return nil, err
	}
	layerNames := make([]string, 0, instanceLayerLen)
	for _, layer := range instanceLayer[:instanceLayerLen] {
		layer.Deref()
		layerNames = append(layerNames, vk.ToString(layer.LayerName[:]))
	}
	return layerNames, nil
}

// SupportedExtensions returns the instance extensions the loader knows about. The
// loader must be initialized.
func SupportedExtensions() ([]string, error) {
	var instanceExtLen uint32
	err := enumerateError("vkEnumerateInstanceExtensionProperties", vk.EnumerateInstanceExtensionProperties("", &instanceExtLen, nil))
	if err != nil {
		return nil, err
	}
	instanceExt := make([]vk.ExtensionProperties, instanceExtLen)
	err = enumerateError("vkEnumerateInstanceExtensionProperties", vk.EnumerateInstanceExtensionProperties("", &instanceExtLen, instanceExt))
	if err != nil {
		return nil, err
	}
	extNames := make([]string, 0, instanceExtLen)
	for _, ext := range instanceExt[:instanceExtLen] {
		ext.Deref()
		extNames = append(extNames, vk.ToString(ext.ExtensionName[:]))
	}
	return extNames, nil
}
