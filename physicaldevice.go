package vkframe

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

type VKPresentModes []vk.PresentMode

func (v VKPresentModes) Filter(f vk.PresentMode) VKPresentModes {
	ret := make(VKPresentModes, 0)
	for _, s := range v {
		if f == s {
			ret = append(ret, s)
		}
	}
	return ret
}

type PhysicalDevice struct {
	Driver                     Driver
	DeviceName                 string
	VKPhysicalDevice           vk.PhysicalDevice
	VKPhysicalDeviceProperties vk.PhysicalDeviceProperties
}

func (p *PhysicalDevice) GetSurfacePresentModes(surface vk.Surface) (VKPresentModes, error) {
	return p.Driver.GetPhysicalDeviceSurfacePresentModes(p.VKPhysicalDevice, surface)
}

func (p *PhysicalDevice) GetSurfaceFormats(surface vk.Surface) ([]vk.SurfaceFormat, error) {
	return p.Driver.GetPhysicalDeviceSurfaceFormats(p.VKPhysicalDevice, surface)
}

func (p *PhysicalDevice) GetSurfaceCapabilities(surface vk.Surface) (vk.SurfaceCapabilities, error) {
	return p.Driver.GetPhysicalDeviceSurfaceCapabilities(p.VKPhysicalDevice, surface)
}

// MinStorageBufferOffsetAlignment is the alignment a storage buffer range bound
// to a descriptor must start at on this device.
func (p *PhysicalDevice) MinStorageBufferOffsetAlignment() uint64 {
	return uint64(p.VKPhysicalDeviceProperties.Limits.MinStorageBufferOffsetAlignment)
}

func (p *PhysicalDevice) String() string {
	return p.DeviceName
}

func (p *PhysicalDevice) QueueFamilies() QueueFamilySlice {
	props := p.Driver.GetPhysicalDeviceQueueFamilyProperties(p.VKPhysicalDevice)

	ret := make(QueueFamilySlice, len(props))
	for i, queue := range props {
		ret[i] = &QueueFamily{Index: i, PhysicalDevice: p, VKQueueFamilyProperties: queue}
	}
	return ret
}

// CreateDeviceOptions controls logical device creation. Features left nil enables
// no optional features.
type CreateDeviceOptions struct {
	EnabledExtensions []string
	EnabledLayers     []string
	EnabledFeatures   *vk.PhysicalDeviceFeatures
}

// CreateLogicalDeviceWithOptions creates a device with one queue of priority 1.0 per
// queue family in qfs.
func (p *PhysicalDevice) CreateLogicalDeviceWithOptions(qfs QueueFamilySlice, options *CreateDeviceOptions) (*Device, error) {

	queueCreateInfos := make([]vk.DeviceQueueCreateInfo, len(qfs))
	for j, q := range qfs {
		queueCreateInfos[j] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: uint32(q.Index),
			QueueCount:       1,
			PQueuePriorities: []float32{1.0},
		}
	}

	var features vk.PhysicalDeviceFeatures
	if options != nil && options.EnabledFeatures != nil {
		features = *options.EnabledFeatures
	}

	deviceCreateInfo := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: uint32(len(qfs)),
		PQueueCreateInfos:    queueCreateInfos,
		PEnabledFeatures:     []vk.PhysicalDeviceFeatures{features},
	}

	if options != nil {
		if options.EnabledExtensions != nil {
			deviceCreateInfo.EnabledExtensionCount = uint32(len(options.EnabledExtensions))
			deviceCreateInfo.PpEnabledExtensionNames = safeStrings(options.EnabledExtensions)
		}
		if options.EnabledLayers != nil {
			deviceCreateInfo.EnabledLayerCount = uint32(len(options.EnabledLayers))
			deviceCreateInfo.PpEnabledLayerNames = safeStrings(options.EnabledLayers)
		}
	}

	ldevice, err := p.Driver.CreateDevice(p.VKPhysicalDevice, &deviceCreateInfo)
	if err != nil {
		return nil, err
	}

	return &Device{Driver: p.Driver, PhysicalDevice: p, VKDevice: ldevice}, nil
}

func (p *PhysicalDevice) VKPhysicalDeviceFeatures() vk.PhysicalDeviceFeatures {
	return p.Driver.GetPhysicalDeviceFeatures(p.VKPhysicalDevice)
}

func (p *PhysicalDevice) VKPhysicalDeviceMemoryProperties() vk.PhysicalDeviceMemoryProperties {
	return p.Driver.GetPhysicalDeviceMemoryProperties(p.VKPhysicalDevice)
}

// SupportedExtensions lists the device extensions. It queries the loader
// directly and needs an initialized loader.
func (p *PhysicalDevice) SupportedExtensions() ([]string, error) {
	var count uint32
	err := enumerateError("vkEnumerateDeviceExtensionProperties", vk.EnumerateDeviceExtensionProperties(p.VKPhysicalDevice, "", &count, nil))
	if err != nil {
		return nil, err
	}
	ext := make([]vk.ExtensionProperties, count)
	err = enumerateError("vkEnumerateDeviceExtensionProperties", vk.EnumerateDeviceExtensionProperties(p.VKPhysicalDevice, "", &count, ext))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	for _, e := range ext[:count] {
		e.Deref()
		names = append(names, vk.ToString(e.ExtensionName[:]))
	}
	return names, nil
}

// FindMemoryType looks up a memory type on this device, see FindMemoryTypeIndex.
func (p *PhysicalDevice) FindMemoryType(req vk.MemoryRequirements, flags vk.MemoryPropertyFlags) (uint32, error) {
	index, ok := FindMemoryTypeIndex(req, p.VKPhysicalDeviceMemoryProperties(), flags)
	if !ok {
		return 0, fmt.Errorf("type bits %#x with flags %#x: %w", req.MemoryTypeBits, flags, ErrNoMemoryType)
	}
	return index, nil
}

// SelectPhysicalDevice returns the first device, in enumeration order, that has a
// queue family supporting both graphics and presentation to surface, along with that
// family. There is no ranking between candidates.
func SelectPhysicalDevice(devices []*PhysicalDevice, surface vk.Surface) (*PhysicalDevice, *QueueFamily, error) {
	for _, pd := range devices {
		for _, qf := range pd.QueueFamilies() {
			if !qf.IsGraphics() {
				continue
			}
			ok, err := qf.SupportsPresent(surface)
			if err != nil {
				return nil, nil, fmt.Errorf("surface support on %s: %w", pd, err)
			}
			if ok {
				return pd, qf, nil
			}
		}
	}
	return nil, nil, ErrNoSuitableDevice
}
