package vkframe

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

type Image struct {
	Device   *Device
	VKImage  vk.Image
	VKFormat vk.Format
}

func (i *Image) GetMemoryRequirements() vk.MemoryRequirements {
	return i.Device.Driver.GetImageMemoryRequirements(i.Device.VKDevice, i.VKImage)
}

// CreateImage creates a single mip, single layer, single sample 2D image with
// exclusive sharing.
func (d *Device) CreateImage(extent vk.Extent2D, format vk.Format, tiling vk.ImageTiling, usage vk.ImageUsageFlags) (*Image, error) {
	var imageInfo = vk.ImageCreateInfo{}
	imageInfo.SType = vk.StructureTypeImageCreateInfo
	imageInfo.ImageType = vk.ImageType2d
	imageInfo.Extent.Width = extent.Width
	imageInfo.Extent.Height = extent.Height
	imageInfo.Extent.Depth = 1
	imageInfo.MipLevels = 1
	imageInfo.ArrayLayers = 1
	imageInfo.Format = format
	imageInfo.Tiling = tiling
	imageInfo.InitialLayout = vk.ImageLayoutUndefined
	imageInfo.Usage = usage
	imageInfo.Samples = vk.SampleCount1Bit
	imageInfo.SharingMode = vk.SharingModeExclusive

	image, err := d.Driver.CreateImage(d.VKDevice, &imageInfo)
	if err != nil {
		return nil, err
	}

	return &Image{Device: d, VKImage: image, VKFormat: format}, nil
}

func (i *Image) Bind(memory *DeviceMemory, offset uint64) error {
	return i.Device.Driver.BindImageMemory(i.Device.VKDevice, i.VKImage, memory.VKDeviceMemory, vk.DeviceSize(offset))
}

func (i *Image) Destroy() {
	i.Device.Driver.DestroyImage(i.Device.VKDevice, i.VKImage)
}

// BoundImage is an image together with the memory bound to it at offset 0.
type BoundImage struct {
	*Image
	DeviceMemory *DeviceMemory
}

// CreateBoundImage creates an image, allocates memory for it from the first type
// carrying props and binds it at offset 0. When no type qualifies the image is
// destroyed again and the error wraps ErrNoMemoryType.
func (d *Device) CreateBoundImage(extent vk.Extent2D, format vk.Format, tiling vk.ImageTiling, usage vk.ImageUsageFlags, props vk.MemoryPropertyFlags) (*BoundImage, error) {
	i, err := d.CreateImage(extent, format, tiling, usage)
	if err != nil {
		return nil, err
	}

	mem, err := d.Allocate(i.GetMemoryRequirements(), props)
	if err != nil {
		i.Destroy()
		return nil, fmt.Errorf("image memory: %w", err)
	}

	if err := i.Bind(mem, 0); err != nil {
		i.Destroy()
		mem.Destroy()
		return nil, err
	}

	return &BoundImage{Image: i, DeviceMemory: mem}, nil
}

// Destroy frees the memory and then destroys the image.
func (b *BoundImage) Destroy() {
	b.DeviceMemory.Destroy()
	b.Image.Destroy()
}
