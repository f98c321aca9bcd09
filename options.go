package vkframe

// Options configures a GraphicsContext.
type Options struct {
	// Width and Height are the requested surface resolution while the window
	// reports no framebuffer size, used when the surface leaves the extent to the
	// swapchain.
	Width  int
	Height int

	AppName    string
	EngineName string
	AppVersion Version
	// APIVersion is the Vulkan API version requested from the instance.
	APIVersion Version

	// EnableValidation enables the Khronos validation layer.
	EnableValidation bool
}

// DefaultOptions returns the options used for fields left at their zero value.
func DefaultOptions() Options {
	return Options{
		Width:      1920,
		Height:     1080,
		AppName:    "vkframe",
		EngineName: "vkframe",
		APIVersion: Version{Major: 1, Minor: 3},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.AppName == "" {
		o.AppName = d.AppName
	}
	if o.EngineName == "" {
		o.EngineName = d.EngineName
	}
	if o.APIVersion == (Version{}) {
		o.APIVersion = d.APIVersion
	}
	return o
}
