package vkframe

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

func TestDescriptorSetLayoutBindings(t *testing.T) {
	s := newStubDriver()
	dev := newStubDevice(s)

	layout := dev.NewDescriptorSetLayout().
		AddStorageBuffer(0, vk.ShaderStageFragmentBit).
		AddBinding(vk.DescriptorSetLayoutBinding{
			Binding:         1,
			DescriptorType:  vk.DescriptorTypeUniformBuffer,
			DescriptorCount: 1,
			StageFlags:      vk.ShaderStageFlags(vk.ShaderStageVertexBit),
		})
	require.Len(t, layout.VKDescriptorSetLayoutBindings, 2)
	assert.Equal(t, vk.DescriptorTypeStorageBuffer, layout.VKDescriptorSetLayoutBindings[0].DescriptorType)
	assert.Equal(t, vk.ShaderStageFlags(vk.ShaderStageFragmentBit), layout.VKDescriptorSetLayoutBindings[0].StageFlags)

	created, err := dev.CreateDescriptorSetLayout(layout)
	require.NoError(t, err)
	assert.Same(t, layout, created)
	assert.Equal(t, 1, s.count("CreateDescriptorSetLayout", uintptr(unsafe.Pointer(layout.VKDescriptorSetLayout))))

	created.Destroy()
	assert.Equal(t, 1, s.count("DestroyDescriptorSetLayout", uintptr(unsafe.Pointer(layout.VKDescriptorSetLayout))))
}

func TestDescriptorSetLayoutCreateFailure(t *testing.T) {
	s := newStubDriver()
	s.fail["CreateDescriptorSetLayout"] = errStub
	dev := newStubDevice(s)

	_, err := dev.CreateDescriptorSetLayout(dev.NewDescriptorSetLayout())
	assert.ErrorIs(t, err, errStub)
}

func TestDescriptorPoolAllocateAndWrite(t *testing.T) {
	s := newStubDriver()
	dev := newStubDevice(s)

	layout, err := dev.CreateDescriptorSetLayout(dev.NewDescriptorSetLayout().AddStorageBuffer(0, vk.ShaderStageFragmentBit))
	require.NoError(t, err)
	pool, err := dev.CreateDescriptorPool(dev.NewDescriptorPool().AddPoolSize(vk.DescriptorTypeStorageBuffer, 2), 2)
	require.NoError(t, err)
	require.Len(t, pool.VKDescriptorPoolSize, 1)
	assert.Equal(t, uint32(2), pool.VKDescriptorPoolSize[0].DescriptorCount)

	sets, err := pool.Allocate(layout, layout)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.NotEqual(t, uintptr(unsafe.Pointer(sets[0].VKDescriptorSet)), uintptr(unsafe.Pointer(sets[1].VKDescriptorSet)))
	assert.Same(t, pool, sets[0].DescriptorPool)

	b, err := dev.CreateBoundBuffer(256, vk.BufferUsageFlags(vk.BufferUsageStorageBufferBit), HostVisibleCoherent)
	require.NoError(t, err)
	defer b.Destroy()

	set := sets[1].AddBuffer(0, vk.DescriptorTypeStorageBuffer, b.Buffer, 64, 128)
	assert.Empty(t, s.writes, "nothing is written before Write")
	set.Write()

	require.Len(t, s.writes, 1)
	w := s.writes[0]
	assert.Equal(t, uintptr(unsafe.Pointer(sets[1].VKDescriptorSet)), uintptr(unsafe.Pointer(w.DstSet)))
	assert.Equal(t, vk.DescriptorTypeStorageBuffer, w.DescriptorType)
	require.Len(t, w.PBufferInfo, 1)
	assert.Equal(t, uintptr(unsafe.Pointer(b.VKBuffer)), uintptr(unsafe.Pointer(w.PBufferInfo[0].Buffer)))
	assert.Equal(t, vk.DeviceSize(64), w.PBufferInfo[0].Offset)
	assert.Equal(t, vk.DeviceSize(128), w.PBufferInfo[0].Range)

	set.Write()
	assert.Equal(t, 1, s.countOp("UpdateDescriptorSets"), "queued writes are cleared")

	pool.Destroy()
	layout.Destroy()
	assert.Equal(t, []string{"DestroyDescriptorPool", "DestroyDescriptorSetLayout"}, s.ops()[len(s.ops())-2:])
}

func TestDescriptorPoolAllocateFailure(t *testing.T) {
	s := newStubDriver()
	dev := newStubDevice(s)
	pool, err := dev.CreateDescriptorPool(dev.NewDescriptorPool(), 1)
	require.NoError(t, err)

	s.fail["AllocateDescriptorSets"] = errStub
	_, err = pool.Allocate(dev.NewDescriptorSetLayout())
	assert.ErrorIs(t, err, errStub)
}

func TestPipelineLayoutWithSetLayouts(t *testing.T) {
	s := newStubDriver()
	dev := newStubDevice(s)
	setLayout, err := dev.CreateDescriptorSetLayout(dev.NewDescriptorSetLayout().AddStorageBuffer(0, vk.ShaderStageFragmentBit))
	require.NoError(t, err)

	layout, err := dev.CreatePipelineLayout(setLayout)
	require.NoError(t, err)
	defer layout.Destroy()
	require.NotNil(t, s.layoutInfo)
	assert.Equal(t, uint32(1), s.layoutInfo.SetLayoutCount)
	assert.Equal(t, uintptr(unsafe.Pointer(setLayout.VKDescriptorSetLayout)), uintptr(unsafe.Pointer(s.layoutInfo.PSetLayouts[0])))
	assert.Zero(t, s.layoutInfo.PushConstantRangeCount)

	pc := []vk.PushConstantRange{{StageFlags: vk.ShaderStageFlags(vk.ShaderStageVertexBit), Size: 64}}
	_, err = dev.CreatePipelineLayoutWithPushConstants(pc)
	require.NoError(t, err)
	assert.Zero(t, s.layoutInfo.SetLayoutCount)
	assert.Equal(t, uint32(1), s.layoutInfo.PushConstantRangeCount)
}

func TestDrawFrameBindsDescriptorSets(t *testing.T) {
	s := newStubDriver()
	ctx, _, err := newStubContext(s)
	require.NoError(t, err)
	defer ctx.Destroy()

	renderPass, err := ctx.CreateRenderPass()
	require.NoError(t, err)
	defer renderPass.Destroy()
	framebuffers, err := ctx.CreateFramebuffers(renderPass)
	require.NoError(t, err)

	setLayout, err := ctx.Device.CreateDescriptorSetLayout(ctx.Device.NewDescriptorSetLayout().AddStorageBuffer(0, vk.ShaderStageFragmentBit))
	require.NoError(t, err)
	defer setLayout.Destroy()
	pool, err := ctx.Device.CreateDescriptorPool(ctx.Device.NewDescriptorPool().AddPoolSize(vk.DescriptorTypeStorageBuffer, 1), 1)
	require.NoError(t, err)
	defer pool.Destroy()
	sets, err := pool.Allocate(setLayout)
	require.NoError(t, err)
	layout, err := ctx.Device.CreatePipelineLayout(setLayout)
	require.NoError(t, err)
	defer layout.Destroy()

	vertices, err := ctx.Device.CreateHostVertexBuffer(VertexData{{}, {}, {}})
	require.NoError(t, err)
	defer vertices.Destroy()
	indices, err := ctx.Device.CreateHostIndexBuffer(IndexSliceUint32{0, 1, 2})
	require.NoError(t, err)
	defer indices.Destroy()

	call := &DrawCall{
		RenderPass:     renderPass,
		Framebuffers:   framebuffers,
		Pipeline:       &GraphicsPipeline{Device: ctx.Device, VKPipeline: vk.Pipeline(newHandle())},
		PipelineLayout: layout,
		DescriptorSets: sets,
		VertexBuffer:   vertices.Buffer,
		IndexBuffer:    indices.Buffer,
		IndexType:      vk.IndexTypeUint32,
		IndexCount:     3,
	}

	start := len(s.calls)
	require.NoError(t, ctx.DrawFrame(call))
	var ops []string
	for _, c := range s.calls[start:] {
		if len(c.op) > 3 && c.op[:3] == "Cmd" {
			ops = append(ops, c.op)
		}
	}
	require.Len(t, ops, 9)
	assert.Equal(t, "CmdBindPipeline", ops[1])
	assert.Equal(t, "CmdBindDescriptorSets", ops[2])
	assert.Equal(t, 1, s.count("CmdBindDescriptorSets", uintptr(unsafe.Pointer(sets[0].VKDescriptorSet))))

	call.PipelineLayout = nil
	start = len(s.calls)
	assert.Error(t, ctx.DrawFrame(call))
	assert.Len(t, s.calls, start)

	for _, fb := range framebuffers {
		fb.Destroy()
	}
}
