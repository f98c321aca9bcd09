// Package shader compiles WGSL sources to SPIR-V words ready for
// vkframe.Device.CreateShaderModule.
package shader

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"
)

// Stage identifies the pipeline stage a source is compiled for.
type Stage int

const (
	StageVertex Stage = iota + 1
	StageFragment
)

var (
	// ErrUnknownStage is returned for stages other than StageVertex and StageFragment.
	ErrUnknownStage = errors.New("unknown shader stage")

	// ErrNoEntryPoint is returned when the source has no "main" entry point for
	// the requested stage.
	ErrNoEntryPoint = errors.New("no main entry point for stage")
)

// entryPoint is the name every stage's entry point must have.
const entryPoint = "main"

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Compile reads the WGSL file at path and compiles it for stage. The entry
// point of the stage must be named "main".
func Compile(path string, stage Stage) ([]uint32, error) {
	if err := stage.validate(); err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	code, err := CompileSource(string(src), stage)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return code, nil
}

// CompileSource compiles in-memory WGSL for stage. The source must declare
// "main" as an entry point of that stage.
func CompileSource(src string, stage Stage) ([]uint32, error) {
	if err := stage.validate(); err != nil {
		return nil, err
	}
	ast, err := naga.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", stage, err)
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", stage, err)
	}
	if !hasEntryPoint(module, stage) {
		return nil, fmt.Errorf("%s shader: %w", stage, ErrNoEntryPoint)
	}
	invalid, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", stage, err)
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%s shader: %w", stage, &invalid[0])
	}
	spirvBytes, err := naga.GenerateSPIRV(module, spirv.Options{Version: spirv.Version1_3})
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", stage, err)
	}
	return words(spirvBytes)
}

func hasEntryPoint(module *ir.Module, stage Stage) bool {
	for _, ep := range module.EntryPoints {
		if ep.Name == entryPoint && ep.Stage == stage.irStage() {
			return true
		}
	}
	return false
}

func (s Stage) irStage() ir.ShaderStage {
	if s == StageFragment {
		return ir.StageFragment
	}
	return ir.StageVertex
}

func (s Stage) validate() error {
	switch s {
	case StageVertex, StageFragment:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStage, s)
	}
}

// words converts little-endian SPIR-V bytes to 32-bit words.
func words(spirvBytes []byte) ([]uint32, error) {
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("spir-v output of %d bytes is not word aligned", len(spirvBytes))
	}
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if code[0] != spirvMagic {
		return nil, fmt.Errorf("spir-v magic %#08x, want %#08x", code[0], spirvMagic)
	}
	return code, nil
}
