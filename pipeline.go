package vkframe

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

type PipelineCache struct {
	Device          *Device
	VKPipelineCache vk.PipelineCache
}

func (d *Device) CreatePipelineCache() (*PipelineCache, error) {
	var pipelineCacheCreate = vk.PipelineCacheCreateInfo{}
	pipelineCacheCreate.SType = vk.StructureTypePipelineCacheCreateInfo

	pipelineCache, err := d.Driver.CreatePipelineCache(d.VKDevice, &pipelineCacheCreate)
	if err != nil {
		return nil, err
	}
	return &PipelineCache{Device: d, VKPipelineCache: pipelineCache}, nil
}

func (c *PipelineCache) Destroy() {
	c.Device.Driver.DestroyPipelineCache(c.Device.VKDevice, c.VKPipelineCache)
}

type GraphicsPipeline struct {
	Device     *Device
	VKPipeline vk.Pipeline
}

func (p *GraphicsPipeline) Destroy() {
	p.Device.Driver.DestroyPipeline(p.Device.VKDevice, p.VKPipeline)
}

// CreateGraphicsPipelines creates one pipeline per config for subpass 0 of
// renderPass. cache may be nil.
func (d *Device) CreateGraphicsPipelines(cache *PipelineCache, renderPass *RenderPass, extent vk.Extent2D, configs ...*GraphicsPipelineConfig) ([]*GraphicsPipeline, error) {
	infos := make([]vk.GraphicsPipelineCreateInfo, len(configs))
	for i, config := range configs {
		info, err := config.VKGraphicsPipelineCreateInfo(extent)
		if err != nil {
			return nil, fmt.Errorf("pipeline config %d: %w", i, err)
		}
		info.RenderPass = renderPass.VKRenderPass
		infos[i] = info
	}

	var vkCache vk.PipelineCache
	if cache != nil {
		vkCache = cache.VKPipelineCache
	}

	pipelines, err := d.Driver.CreateGraphicsPipelines(d.VKDevice, vkCache, infos)
	if err != nil {
		return nil, err
	}

	ret := make([]*GraphicsPipeline, len(pipelines))
	for i := range pipelines {
		ret[i] = &GraphicsPipeline{Device: d, VKPipeline: pipelines[i]}
	}
	return ret, nil
}
